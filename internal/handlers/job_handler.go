package handlers

import (
	"net/http"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// CreateJob is the POST /post-job endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing required job fields: "+err.Error())
		return
	}

	job, err := h.Jobs.CreateJob(&req)
	if err != nil {
		failService(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is the PUT /jobs/:jobId endpoint.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID, ok := uintParam(c, "jobId")
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	job, err := h.Jobs.UpdateJob(jobID, &req)
	if err != nil {
		failService(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is the DELETE /jobs/:jobId endpoint.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, ok := uintParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.Jobs.DeleteJob(jobID); err != nil {
		failService(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ListJobs is the GET /jobs endpoint.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListJobs()
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/:jobId endpoint.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := uintParam(c, "jobId")
	if !ok {
		return
	}

	job, err := h.Jobs.GetJob(jobID)
	if err != nil {
		failService(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobsByEmployer is the GET /jobs/employer/:userId endpoint. It is
// mounted at /jobs/:jobId/:userId (see RegisterRoutes), so anything but
// the employer segment is not a route.
func (h *JobHandler) ListJobsByEmployer(c *gin.Context) {
	if c.Param("jobId") != "employer" {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	jobs, err := h.Jobs.ListJobsByEmployer(userID)
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
