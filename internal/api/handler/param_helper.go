package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// pathID parses the :id path parameter. On failure it writes a 400 and
// returns false; callers must return immediately.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid ID", "ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
