package services

import (
	"errors"

	"gorm.io/gorm"
)

type DirectoryService struct {
	DB *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db}
}

// EmployerInfo is an employer profile joined with its account's contact
// details.
type EmployerInfo struct {
	UserID            uint    `json:"user_id"`
	CompanyName       string  `json:"companyName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

const employerColumns = "employer_profiles.user_id, employer_profiles.company_name, " +
	"users.email, users.phone, users.address, users.profile_picture_url"

func (s *DirectoryService) ListEmployers() ([]EmployerInfo, error) {
	var rows []EmployerInfo
	err := s.DB.Table("employer_profiles").
		Select(employerColumns).
		Joins("JOIN users ON users.id = employer_profiles.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *DirectoryService) GetEmployer(userID uint) (*EmployerInfo, error) {
	var row EmployerInfo
	res := s.DB.Table("employer_profiles").
		Select(employerColumns).
		Joins("JOIN users ON users.id = employer_profiles.user_id").
		Where("employer_profiles.user_id = ?", userID).
		Scan(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}
