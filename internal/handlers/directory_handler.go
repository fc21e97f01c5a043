package handlers

import (
	"net/http"

	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	Directory *services.DirectoryService
}

func NewDirectoryHandler(directory *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Directory: directory}
}

// ListEmployers is the GET /employers endpoint.
func (h *DirectoryHandler) ListEmployers(c *gin.Context) {
	employers, err := h.Directory.ListEmployers()
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, employers)
}

// GetEmployer is the GET /employers/:employerId endpoint.
func (h *DirectoryHandler) GetEmployer(c *gin.Context) {
	employerID, ok := uintParam(c, "employerId")
	if !ok {
		return
	}

	employer, err := h.Directory.GetEmployer(employerID)
	if err != nil {
		failService(c, err, "Employer not found")
		return
	}
	c.JSON(http.StatusOK, employer)
}
