package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/repository"
	"github.com/KrishSharma007/hostel-management/pkg/redis"
)

// Service aggregates every business service behind one handle.
type Service struct {
	Student    StudentService
	Warden     WardenService
	Attendant  AttendantService
	Hostel     HostelService
	Assignment AssignmentService
	Duty       DutyService
	Bill       BillService
	Dashboard  DashboardService
	Export     ExportService
}

// NewService wires the services onto the repository aggregate. cache may
// be nil, in which case dashboard reads always hit the database.
func NewService(repo *repository.Repository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Service {
	dashboard := NewDashboardService(repo, cache, cacheTTL, logger)
	return &Service{
		Student:    NewStudentService(repo, logger),
		Warden:     NewWardenService(repo, logger),
		Attendant:  NewAttendantService(repo, logger),
		Hostel:     NewHostelService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Duty:       NewDutyService(repo, logger),
		Bill:       NewBillService(repo, logger),
		Dashboard:  dashboard,
		Export:     NewExportService(repo, dashboard, logger),
	}
}
