package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/careerbridge/jobboard-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Uploader     storage.Uploader
}

func NewApplicationHandler(applications *services.ApplicationService, uploader storage.Uploader) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Uploader: uploader}
}

// Apply is the POST /apply-job/:jobId endpoint. The applicant fields
// arrive as a JSON string in the formData part, next to the optional
// resume and coverLetter file parts.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := uintParam(c, "jobId")
	if !ok {
		return
	}

	formData := c.PostForm("formData")
	if formData == "" {
		fail(c, http.StatusBadRequest, "formData field is required")
		return
	}

	var req dtos.ApplicationRequest
	if err := json.Unmarshal([]byte(formData), &req); err != nil {
		fail(c, http.StatusBadRequest, "formData is not valid JSON: "+err.Error())
		return
	}
	// Unmarshal skips binding tags, so run the validator by hand.
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing required application fields: "+err.Error())
		return
	}

	resumeURL, ok := h.uploadPart(c, "resume")
	if !ok {
		return
	}
	coverURL, ok := h.uploadPart(c, "coverLetter")
	if !ok {
		return
	}

	app, err := h.Applications.Apply(jobID, &req, resumeURL, coverURL)
	if err != nil {
		failService(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusCreated, app)
}

// uploadPart pushes one optional file part to blob storage. A false
// return means the response was already written.
func (h *ApplicationHandler) uploadPart(c *gin.Context, field string) (*string, bool) {
	data, filename, err := readFormFile(c, field)
	if err != nil {
		failInternal(c, err)
		return nil, false
	}
	if data == nil {
		return nil, true
	}
	url, err := h.Uploader.Upload(c.Request.Context(), data, filename)
	if err != nil {
		failInternal(c, err)
		return nil, false
	}
	return &url, true
}

// ListForJob is the GET /applications/job/:jobId endpoint, mounted at
// /applications/:applicationId/:jobId (see RegisterRoutes). The userId
// query names the requesting employer; ownership is enforced by the join.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	if c.Param("applicationId") != "job" {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	jobID, ok := uintParam(c, "jobId")
	if !ok {
		return
	}
	requesterID, ok := uintQuery(c, "userId")
	if !ok {
		return
	}
	if requesterID == nil {
		fail(c, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	apps, err := h.Applications.ListForJob(jobID, *requesterID)
	if err != nil {
		failService(c, err, "No applications found for this job")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Get is the GET /applications/:applicationId endpoint. The ownership
// check only runs when a userId query was supplied.
func (h *ApplicationHandler) Get(c *gin.Context) {
	appID, ok := uintParam(c, "applicationId")
	if !ok {
		return
	}
	requesterID, ok := uintQuery(c, "userId")
	if !ok {
		return
	}

	app, err := h.Applications.Get(appID, requesterID)
	if err != nil {
		failService(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateStatus is the PATCH /applications/:applicationId/status endpoint.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, ok := uintParam(c, "applicationId")
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "status field is required")
		return
	}

	if err := h.Applications.UpdateStatus(appID, req.Status); err != nil {
		failService(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}

// ListAppliedJobs is the GET /applied-jobs endpoint.
func (h *ApplicationHandler) ListAppliedJobs(c *gin.Context) {
	requesterID, ok := uintQuery(c, "userId")
	if !ok {
		return
	}
	if requesterID == nil {
		fail(c, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	jobs, err := h.Applications.ListAppliedJobs(*requesterID)
	if err != nil {
		failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
