package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// Version is the reported API version; overridable at build time via
// -ldflags "-X ...handler.Version=".
var Version = "1.0.0"

// HealthHandler serves /api/health.
type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Check handles GET and HEAD /api/health. It reports liveness only.
func (h *HealthHandler) Check(c *gin.Context) {
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	response.OK(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"uptime":    int64(time.Since(h.started).Seconds()),
		"version":   Version,
	})
}

// CheckDB handles GET /api/health/db. It pings the database and answers
// 503 when the store is unreachable.
func (h *HealthHandler) CheckDB(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		response.ServiceUnavailable(c)
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		response.ServiceUnavailable(c)
		return
	}
	response.OK(c, gin.H{"status": "ok", "database": "up"})
}
