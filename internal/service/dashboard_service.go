package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/model"
	"github.com/KrishSharma007/hostel-management/internal/repository"
	"github.com/KrishSharma007/hostel-management/pkg/redis"
)

const (
	cacheKeyOccupancy = "dashboard:occupancy"
	cacheKeyFinancial = "dashboard:financial"
)

// DashboardService serves the aggregated dashboard views. Results are
// cached in Redis for a short TTL when a cache client is configured;
// cache failures fall through to the database.
type DashboardService interface {
	OccupancySummary(ctx context.Context) (*dto.OccupancySummaryResponse, error)
	FinancialSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error)
}

type dashboardService struct {
	repo     *repository.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewDashboardService(repo *repository.Repository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (s *dashboardService) OccupancySummary(ctx context.Context) (*dto.OccupancySummaryResponse, error) {
	var cached dto.OccupancySummaryResponse
	if s.cacheGet(ctx, cacheKeyOccupancy, &cached) {
		return &cached, nil
	}

	hostels, err := s.repo.Hostel.ListWithOccupancy(ctx)
	if err != nil {
		s.logger.Error("load hostels failed", zap.Error(err))
		return nil, err
	}

	totalStudents, err := s.repo.Student.Count(ctx)
	if err != nil {
		s.logger.Error("count students failed", zap.Error(err))
		return nil, err
	}

	typeCounts, err := s.repo.Room.CountByType(ctx)
	if err != nil {
		s.logger.Error("count rooms failed", zap.Error(err))
		return nil, err
	}

	summary := &dto.OccupancySummaryResponse{
		TotalStudents: totalStudents,
		TotalHostels:  len(hostels),
		Hostels:       make([]dto.HostelOccupancy, 0, len(hostels)),
	}

	// occupiedRooms counts active allocations, not distinct rooms, so a
	// shared room contributes once per occupant.
	for i := range hostels {
		h := &hostels[i]

		occupied := 0
		for _, room := range h.Rooms {
			occupied += len(room.Allocations)
		}

		summary.TotalRooms += len(h.Rooms)
		summary.OccupiedRooms += occupied
		summary.Hostels = append(summary.Hostels, dto.HostelOccupancy{
			ID:         h.ID,
			Name:       h.Name,
			TotalRooms: len(h.Rooms),
			Occupied:   occupied,
		})
	}
	summary.AvailableRooms = summary.TotalRooms - summary.OccupiedRooms
	if summary.TotalRooms > 0 {
		summary.OccupancyRate = round2(float64(summary.OccupiedRooms) / float64(summary.TotalRooms) * 100)
	}

	// Stable order for chart rendering.
	for _, roomType := range []string{model.RoomTypeSingle, model.RoomTypeDouble, model.RoomTypeTriple, model.RoomTypeDormitory} {
		if n, ok := typeCounts[roomType]; ok {
			summary.RoomTypeDistribution = append(summary.RoomTypeDistribution, dto.RoomTypeDistribution{
				Name:  roomType,
				Value: int64(n),
			})
		}
	}

	s.cacheSet(ctx, cacheKeyOccupancy, summary)
	return summary, nil
}

// FinancialSummary totals the mess bills. TotalOverdue is the outstanding
// amount, generated minus paid, not the sum over OVERDUE-status bills.
func (s *dashboardService) FinancialSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error) {
	var cached dto.FinancialSummaryResponse
	if s.cacheGet(ctx, cacheKeyFinancial, &cached) {
		return &cached, nil
	}

	bills, err := s.repo.Bill.ListAll(ctx)
	if err != nil {
		s.logger.Error("load bills failed", zap.Error(err))
		return nil, err
	}

	// Fines stay out of the totals; only the base bill amounts are summed.
	summary := &dto.FinancialSummaryResponse{BillCount: len(bills)}
	for _, bill := range bills {
		summary.TotalGenerated += bill.BillAmount
		switch bill.Status {
		case model.BillStatusPaid:
			summary.TotalPaid += bill.BillAmount
			summary.PaidBillCount++
		case model.BillStatusOverdue:
			summary.OverdueBillCount++
		}
	}
	summary.TotalGenerated = round2(summary.TotalGenerated)
	summary.TotalPaid = round2(summary.TotalPaid)
	summary.TotalOverdue = round2(summary.TotalGenerated - summary.TotalPaid)

	s.cacheSet(ctx, cacheKeyFinancial, summary)
	return summary, nil
}

func (s *dashboardService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if payload == "" {
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		s.logger.Warn("cache payload invalid", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *dashboardService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
