package services

import (
	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/models"
	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) CreateCourse(req *dtos.CourseCreationRequest) (*models.Course, error) {
	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    true,
	}
	if err := s.DB.Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (s *AdminService) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// UserStats is the per-type account count, one row.
type UserStats struct {
	Students  int64 `json:"students"`
	Employers int64 `json:"employers"`
	Admins    int64 `json:"admins"`
}

func (s *AdminService) GetUserStats() (*UserStats, error) {
	var stats UserStats
	counts := []struct {
		userType models.UserType
		dest     *int64
	}{
		{models.UserTypeStudent, &stats.Students},
		{models.UserTypeEmployer, &stats.Employers},
		{models.UserTypeAdmin, &stats.Admins},
	}
	for _, c := range counts {
		if err := s.DB.Model(&models.User{}).Where("user_type = ?", c.userType).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

func (s *AdminService) GetActiveCourseCount() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Course{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
