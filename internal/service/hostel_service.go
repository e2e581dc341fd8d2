package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/model"
	"github.com/KrishSharma007/hostel-management/internal/repository"
)

var (
	ErrHostelNotFound     = errors.New("hostel not found")
	ErrRoomsOccupied      = errors.New("cannot remove rooms with active allocations")
	ErrHostelHasResidents = errors.New("hostel has actively allocated students")
)

// HostelService manages hostels, their addresses and their room stock.
type HostelService interface {
	Create(ctx context.Context, req *dto.CreateHostelRequest) (*model.Hostel, error)
	GetByID(ctx context.Context, id uint) (*model.Hostel, error)
	Rooms(ctx context.Context, id uint) ([]model.Room, error)
	List(ctx context.Context) ([]dto.HostelResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateHostelRequest) (*model.Hostel, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) ([]dto.HostelStatsResponse, error)
}

type hostelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewHostelService(repo *repository.Repository, logger *zap.Logger) HostelService {
	return &hostelService{repo: repo, logger: logger}
}

// Create inserts the hostel, its address and the requested room stock in
// one transaction. Capacity per room is fixed by room type.
func (s *hostelService) Create(ctx context.Context, req *dto.CreateHostelRequest) (*model.Hostel, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	hostel := &model.Hostel{
		Name:          req.Name,
		ContactNo:     req.ContactNo,
		HostelAddress: hostelAddressFromRequest(&req.Address),
	}
	if err := txRepo.Hostel.Create(ctx, hostel); err != nil {
		rollback(tx)
		s.logger.Error("create hostel failed", zap.Error(err))
		return nil, err
	}

	var rooms []model.Room
	for _, roomType := range []string{model.RoomTypeSingle, model.RoomTypeDouble, model.RoomTypeTriple, model.RoomTypeDormitory} {
		for i := 0; i < req.Rooms.ByType()[roomType]; i++ {
			rooms = append(rooms, model.Room{
				HostelID:         hostel.ID,
				RoomType:         roomType,
				Capacity:         model.RoomCapacity[roomType],
				FurnitureDetails: standardFurniture(roomType),
			})
		}
	}
	if err := txRepo.Room.CreateBatch(ctx, rooms); err != nil {
		rollback(tx)
		s.logger.Error("create rooms failed", zap.Uint("hostelId", hostel.ID), zap.Error(err))
		return nil, err
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, hostel.ID)
}

func (s *hostelService) GetByID(ctx context.Context, id uint) (*model.Hostel, error) {
	return s.detail(ctx, id)
}

// Rooms returns the hostel's rooms with their active allocations and the
// allocated students.
func (s *hostelService) Rooms(ctx context.Context, id uint) ([]model.Room, error) {
	if _, err := s.repo.Hostel.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", id), zap.Error(err))
		return nil, err
	}

	rooms, err := s.repo.Room.ListByHostel(ctx, id)
	if err != nil {
		s.logger.Error("list rooms failed", zap.Uint("hostelId", id), zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

// List returns all hostels decorated with warden, student and attendant
// counts.
func (s *hostelService) List(ctx context.Context) ([]dto.HostelResponse, error) {
	hostels, err := s.repo.Hostel.List(ctx)
	if err != nil {
		s.logger.Error("list hostels failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.HostelResponse, 0, len(hostels))
	for i := range hostels {
		h := &hostels[i]

		students := 0
		for _, room := range h.Rooms {
			students += len(room.Allocations)
		}
		attendants := make(map[uint]bool)
		for _, duty := range h.AttendantDuties {
			attendants[duty.AttendantID] = true
		}

		result = append(result, dto.HostelResponse{
			Hostel:         *h,
			WardenCount:    len(h.WardenAssignments),
			StudentCount:   students,
			AttendantCount: len(attendants),
		})
	}
	return result, nil
}

// Update rewrites the hostel fields, upserts the address and reconciles
// the room stock toward the supplied per-type targets. The whole update
// is rejected when shrinking a type would require deleting an occupied
// room, leaving every room untouched.
func (s *hostelService) Update(ctx context.Context, id uint, req *dto.UpdateHostelRequest) (*model.Hostel, error) {
	hostel, err := s.repo.Hostel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", id), zap.Error(err))
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if req.Name != nil || req.ContactNo != nil {
		if req.Name != nil {
			hostel.Name = *req.Name
		}
		if req.ContactNo != nil {
			hostel.ContactNo = req.ContactNo
		}
		if err := txRepo.Hostel.Update(ctx, hostel); err != nil {
			rollback(tx)
			s.logger.Error("update hostel failed", zap.Uint("hostelId", id), zap.Error(err))
			return nil, err
		}
	}

	if req.Address != nil {
		address := hostelAddressFromRequest(req.Address)
		address.HostelID = id
		if err := txRepo.Hostel.UpdateAddress(ctx, address); err != nil {
			rollback(tx)
			s.logger.Error("upsert hostel address failed", zap.Uint("hostelId", id), zap.Error(err))
			return nil, err
		}
	}

	if req.Rooms != nil {
		for roomType, target := range req.Rooms.ByType() {
			if err := s.reconcileRooms(ctx, txRepo, id, roomType, target); err != nil {
				rollback(tx)
				return nil, err
			}
		}
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, id)
}

// Delete removes the hostel and, through the cascade, its address, rooms,
// assignments and duties. It is rejected while any student is actively
// allocated in the hostel.
func (s *hostelService) Delete(ctx context.Context, id uint) error {
	hostel, err := s.repo.Hostel.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", id), zap.Error(err))
		return err
	}

	for _, room := range hostel.Rooms {
		if len(room.Allocations) > 0 {
			return ErrHostelHasResidents
		}
	}

	if err := s.repo.Hostel.Delete(ctx, id); err != nil {
		s.logger.Error("delete hostel failed", zap.Uint("hostelId", id), zap.Error(err))
		return err
	}
	return nil
}

// Stats aggregates per-hostel occupancy with a per-room-type breakdown.
func (s *hostelService) Stats(ctx context.Context) ([]dto.HostelStatsResponse, error) {
	hostels, err := s.repo.Hostel.ListWithOccupancy(ctx)
	if err != nil {
		s.logger.Error("load hostels failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.HostelStatsResponse, 0, len(hostels))
	for i := range hostels {
		h := &hostels[i]

		stats := dto.HostelStatsResponse{
			HostelID:  h.ID,
			Name:      h.Name,
			RoomTypes: make(map[string]dto.RoomTypeStats),
		}
		for _, room := range h.Rooms {
			occupied := len(room.Allocations)

			typeStats := stats.RoomTypes[room.RoomType]
			typeStats.Count++
			typeStats.Capacity += room.Capacity
			typeStats.Occupied += occupied
			typeStats.Available = typeStats.Capacity - typeStats.Occupied
			stats.RoomTypes[room.RoomType] = typeStats

			stats.TotalRooms++
			stats.TotalCapacity += room.Capacity
			stats.TotalOccupied += occupied
		}
		stats.Available = stats.TotalCapacity - stats.TotalOccupied
		if stats.TotalCapacity > 0 {
			stats.OccupancyRate = round2(float64(stats.TotalOccupied) / float64(stats.TotalCapacity) * 100)
		}
		result = append(result, stats)
	}
	return result, nil
}

func (s *hostelService) detail(ctx context.Context, id uint) (*model.Hostel, error) {
	hostel, err := s.repo.Hostel.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", id), zap.Error(err))
		return nil, err
	}
	return hostel, nil
}

// reconcileRooms brings one room type to the target count. Growth adds
// rooms at the type's fixed capacity; shrinkage deletes unoccupied rooms
// only and fails when too few of them exist.
func (s *hostelService) reconcileRooms(ctx context.Context, txRepo *repository.Repository, hostelID uint, roomType string, target int) error {
	rooms, err := txRepo.Room.ListByHostelAndType(ctx, hostelID, roomType)
	if err != nil {
		s.logger.Error("list rooms failed", zap.Uint("hostelId", hostelID), zap.Error(err))
		return err
	}

	switch {
	case target > len(rooms):
		add := make([]model.Room, 0, target-len(rooms))
		for i := len(rooms); i < target; i++ {
			add = append(add, model.Room{
				HostelID:         hostelID,
				RoomType:         roomType,
				Capacity:         model.RoomCapacity[roomType],
				FurnitureDetails: standardFurniture(roomType),
			})
		}
		if err := txRepo.Room.CreateBatch(ctx, add); err != nil {
			s.logger.Error("create rooms failed", zap.Uint("hostelId", hostelID), zap.Error(err))
			return err
		}

	case target < len(rooms):
		var free []uint
		for _, room := range rooms {
			if len(room.Allocations) == 0 {
				free = append(free, room.ID)
			}
		}
		remove := len(rooms) - target
		if len(free) < remove {
			return ErrRoomsOccupied
		}
		// Newest free rooms go first.
		if err := txRepo.Room.DeleteByIDs(ctx, free[len(free)-remove:]); err != nil {
			s.logger.Error("delete rooms failed", zap.Uint("hostelId", hostelID), zap.Error(err))
			return err
		}
	}
	return nil
}

func standardFurniture(roomType string) *string {
	details := "Standard " + strings.ToLower(roomType) + " room"
	return &details
}

func hostelAddressFromRequest(req *dto.HostelAddressRequest) *model.HostelAddress {
	return &model.HostelAddress{
		Building: req.Building,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		Pincode:  req.Pincode,
		Landmark: req.Landmark,
	}
}
