package services

import (
	"errors"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply inserts one application for the job. resumeURL and coverURL are
// the already-uploaded attachments, either may be nil.
func (s *ApplicationService) Apply(jobID uint, req *dtos.ApplicationRequest, resumeURL, coverURL *string) (*models.Application, error) {
	var count int64
	if err := s.DB.Model(&models.Job{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	app := &models.Application{
		JobID:               jobID,
		UserID:              req.UserID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		Address:             req.Address,
		Position:            req.Position,
		DesiredCompensation: req.DesiredCompensation,
		ResumeURL:           resumeURL,
		CoverLetterURL:      coverURL,
		Status:              models.StatusPending,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// ListForJob returns applications for jobs the requesting user owns.
// Ownership is a join predicate, so "no such job", "no applications" and
// "not your job" all come back as ErrNotFound.
func (s *ApplicationService) ListForJob(jobID, requesterID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.job_id = ? AND jobs.user_id = ?", jobID, requesterID).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, ErrNotFound
	}
	return apps, nil
}

// Get reads one application. The ownership join only applies when the
// caller supplied a userId.
func (s *ApplicationService) Get(appID uint, requesterID *uint) (*models.Application, error) {
	q := s.DB.Where("applications.id = ?", appID)
	if requesterID != nil {
		q = q.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.user_id = ?", *requesterID)
	}

	var app models.Application
	err := q.First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) UpdateStatus(appID uint, status string) error {
	newStatus := models.ApplicationStatus(status)
	if !newStatus.Valid() {
		return ErrInvalidStatus
	}

	res := s.DB.Model(&models.Application{}).Where("id = ?", appID).Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAppliedJobs returns the jobs a user has applied to, via the
// optional account id stored on their applications.
func (s *ApplicationService) ListAppliedJobs(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Joins("JOIN applications ON applications.job_id = jobs.id").
		Where("applications.user_id = ?", userID).
		Order("applications.apply_date DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
