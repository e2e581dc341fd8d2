package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/config"
	"github.com/KrishSharma007/hostel-management/internal/api/handler"
	"github.com/KrishSharma007/hostel-management/internal/api/middleware"
	"github.com/KrishSharma007/hostel-management/internal/dto"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with middleware and the full route table.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	dto.RegisterValidators()

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Check)
		api.HEAD("/health", h.Health.Check)
		api.GET("/health/db", h.Health.CheckDB)

		students := api.Group("/students")
		{
			students.GET("", h.Student.ListStudents)
			students.GET("/:id", h.Student.GetStudent)
			students.POST("", h.Student.CreateStudent)
			students.PUT("/:id", h.Student.UpdateStudent)
			students.DELETE("/:id", h.Student.DeleteStudent)
		}

		wardens := api.Group("/wardens")
		{
			wardens.GET("", h.Warden.ListWardens)
			wardens.GET("/:id", h.Warden.GetWarden)
			wardens.GET("/:id/hostel-assignments", h.Assignment.ListWardenAssignments)
			wardens.POST("", h.Warden.CreateWarden)
			wardens.PUT("/:id", h.Warden.UpdateWarden)
			wardens.DELETE("/:id", h.Warden.DeleteWarden)
		}

		attendants := api.Group("/attendants")
		{
			attendants.GET("", h.Attendant.ListAttendants)
			attendants.GET("/:id", h.Attendant.GetAttendant)
			attendants.GET("/:id/duties", h.Duty.ListAttendantDuties)
			attendants.POST("", h.Attendant.CreateAttendant)
			attendants.PUT("/:id", h.Attendant.UpdateAttendant)
			attendants.DELETE("/:id", h.Attendant.DeleteAttendant)
		}

		hostels := api.Group("/hostels")
		{
			hostels.GET("", h.Hostel.ListHostels)
			hostels.GET("/stats", h.Hostel.GetHostelStats)
			hostels.GET("/:id", h.Hostel.GetHostel)
			hostels.GET("/:id/rooms", h.Hostel.ListHostelRooms)
			hostels.GET("/:id/warden-assignments", h.Assignment.ListHostelAssignments)
			hostels.GET("/:id/attendant-duties", h.Duty.ListHostelDuties)
			hostels.POST("", h.Hostel.CreateHostel)
			hostels.PUT("/:id", h.Hostel.UpdateHostel)
			hostels.DELETE("/:id", h.Hostel.DeleteHostel)
		}

		assignments := api.Group("/hostel-warden-assignments")
		{
			assignments.GET("", h.Assignment.ListAssignments)
			assignments.POST("", h.Assignment.CreateAssignment)
			assignments.PUT("/:id", h.Assignment.UpdateAssignment)
		}

		duties := api.Group("/attendant-duties")
		{
			duties.GET("", h.Duty.ListDuties)
			duties.POST("", h.Duty.CreateDuty)
			duties.PUT("/:id", h.Duty.UpdateDuty)
			duties.DELETE("/:id", h.Duty.DeleteDuty)
		}

		bills := api.Group("/bills")
		{
			bills.GET("", h.Bill.ListBills)
			bills.GET("/:id", h.Bill.GetBill)
			bills.POST("", h.Bill.CreateBill)
			bills.PUT("/:id", h.Bill.UpdateBill)
			bills.DELETE("/:id", h.Bill.DeleteBill)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/occupancy", h.Dashboard.GetOccupancySummary)
			dashboard.GET("/financial", h.Dashboard.GetFinancialSummary)
		}

		export := api.Group("/export")
		{
			export.GET("/bills", h.Export.ExportBills)
			export.GET("/occupancy", h.Export.ExportOccupancy)
		}
	}

	return r
}
