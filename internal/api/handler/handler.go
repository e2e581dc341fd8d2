package handler

import (
	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/service"
)

// Handler aggregates every HTTP handler behind one handle.
type Handler struct {
	Student    *StudentHandler
	Warden     *WardenHandler
	Attendant  *AttendantHandler
	Hostel     *HostelHandler
	Assignment *AssignmentHandler
	Duty       *DutyHandler
	Bill       *BillHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
	Health     *HealthHandler
}

// NewHandler wires the handlers onto the service aggregate. The raw DB
// handle is only used by the health endpoints.
func NewHandler(svc *service.Service, db *gorm.DB) *Handler {
	return &Handler{
		Student:    NewStudentHandler(svc.Student),
		Warden:     NewWardenHandler(svc.Warden),
		Attendant:  NewAttendantHandler(svc.Attendant),
		Hostel:     NewHostelHandler(svc.Hostel),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Duty:       NewDutyHandler(svc.Duty),
		Bill:       NewBillHandler(svc.Bill),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Export:     NewExportHandler(svc.Export),
		Health:     NewHealthHandler(db),
	}
}
