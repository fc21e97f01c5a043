package handlers

import (
	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/careerbridge/jobboard-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes builds the services and wires every route onto the
// engine. main and the tests share this.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, uploader storage.Uploader) {
	accountHandler := NewAccountHandler(services.NewAccountService(db), uploader)
	jobHandler := NewJobHandler(services.NewJobService(db))
	applicationHandler := NewApplicationHandler(services.NewApplicationService(db), uploader)
	directoryHandler := NewDirectoryHandler(services.NewDirectoryService(db))
	adminHandler := NewAdminHandler(services.NewAdminService(db))

	r.GET("/health", HealthCheck)

	// Accounts
	r.POST("/signup", accountHandler.Signup)
	r.POST("/login", accountHandler.Login)
	r.GET("/profile/:userId", accountHandler.GetProfile)
	r.PUT("/profile/:userId", accountHandler.UpdateProfile)

	// Jobs. gin's route tree rejects a static segment next to a wildcard,
	// so /jobs/employer/:userId is mounted through the shared :jobId
	// wildcard and the handler checks the segment.
	r.POST("/post-job", jobHandler.CreateJob)
	r.GET("/jobs", jobHandler.ListJobs)
	r.GET("/jobs/:jobId", jobHandler.GetJob)
	r.PUT("/jobs/:jobId", jobHandler.UpdateJob)
	r.DELETE("/jobs/:jobId", jobHandler.DeleteJob)
	r.GET("/jobs/:jobId/:userId", jobHandler.ListJobsByEmployer)

	// Applications. Same wildcard trick for /applications/job/:jobId.
	r.POST("/apply-job/:jobId", applicationHandler.Apply)
	r.GET("/applications/:applicationId", applicationHandler.Get)
	r.GET("/applications/:applicationId/:jobId", applicationHandler.ListForJob)
	r.PATCH("/applications/:applicationId/status", applicationHandler.UpdateStatus)
	r.GET("/applied-jobs", applicationHandler.ListAppliedJobs)

	// Employer directory
	r.GET("/employers", directoryHandler.ListEmployers)
	r.GET("/employers/:employerId", directoryHandler.GetEmployer)

	// Courses & admin statistics
	r.POST("/admin/courses", adminHandler.CreateCourse)
	r.GET("/courses", adminHandler.ListCourses)
	r.GET("/admin/user-stats", adminHandler.GetUserStats)
	r.GET("/admin/active-courses", adminHandler.GetActiveCourseCount)
}
