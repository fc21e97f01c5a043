package handlers

import (
	"net/http"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{Admin: admin}
}

// CreateCourse is the POST /admin/courses endpoint.
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req dtos.CourseCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "title is required")
		return
	}

	course, err := h.Admin.CreateCourse(&req)
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// ListCourses is the GET /courses endpoint.
func (h *AdminHandler) ListCourses(c *gin.Context) {
	courses, err := h.Admin.ListCourses()
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetUserStats is the GET /admin/user-stats endpoint.
func (h *AdminHandler) GetUserStats(c *gin.Context) {
	stats, err := h.Admin.GetUserStats()
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetActiveCourseCount is the GET /admin/active-courses endpoint.
func (h *AdminHandler) GetActiveCourseCount(c *gin.Context) {
	count, err := h.Admin.GetActiveCourseCount()
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeCourses": count})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
