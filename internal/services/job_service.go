package services

import (
	"errors"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:               req.Title,
		NumPeople:           *req.NumPeople,
		Location:            req.Location,
		StreetAddress:       req.StreetAddress,
		Description:         req.Description,
		CompetitionID:       req.CompetitionID,
		InternalClosingDate: req.InternalClosingDate,
		ExternalClosingDate: req.ExternalClosingDate,
		PayLevel:            req.PayLevel,
		EmploymentType:      req.EmploymentType,
		TravelFrequency:     req.TravelFrequency,
		Category:            req.Category,
		CompanyName:         req.CompanyName,
		ContactInformation:  req.ContactInformation,
		UserID:              req.UserID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) UpdateJob(jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	updates := map[string]interface{}{}
	set := func(col string, v interface{}) { updates[col] = v }
	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.NumPeople != nil {
		set("num_people", *req.NumPeople)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.StreetAddress != nil {
		set("street_address", *req.StreetAddress)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.PayLevel != nil {
		set("pay_level", *req.PayLevel)
	}
	if req.EmploymentType != nil {
		set("employment_type", *req.EmploymentType)
	}
	if req.TravelFrequency != nil {
		set("travel_frequency", *req.TravelFrequency)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.CompanyName != nil {
		set("company_name", *req.CompanyName)
	}
	if req.ContactInformation != nil {
		set("contact_information", *req.ContactInformation)
	}
	if req.CompetitionID != nil {
		set("competition_id", *req.CompetitionID)
	}
	if req.InternalClosingDate != nil {
		set("internal_closing_date", *req.InternalClosingDate)
	}
	if req.ExternalClosingDate != nil {
		set("external_closing_date", *req.ExternalClosingDate)
	}

	if len(updates) > 0 {
		res := s.DB.Model(&models.Job{}).Where("id = ?", jobID).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetJob(jobID)
}

// DeleteJob removes the job and its applications together. Nothing can
// read an application whose job is gone (the listing route joins through
// the job row), so they go in the same transaction.
func (s *JobService) DeleteJob(jobID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Job{}, jobID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *JobService) ListJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetJob(jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) ListJobsByEmployer(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
