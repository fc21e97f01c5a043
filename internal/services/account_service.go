package services

import (
	"errors"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

// Signup creates the User row and its profile row in one transaction.
// pictureURL is the already-uploaded profile picture, if any.
func (s *AccountService) Signup(req *dtos.SignupRequest, pictureURL *string) (*models.User, error) {
	userType := models.UserType(req.UserType)
	if !userType.Valid() {
		return nil, ErrInvalidUserType
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:             req.Email,
		PasswordHash:      string(hash),
		UserType:          userType,
		Address:           req.Address,
		Phone:             req.Phone,
		ProfilePictureURL: pictureURL,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch userType {
		case models.UserTypeStudent:
			user.Student = &models.StudentProfile{UserID: user.ID, FullName: req.FullName}
			return tx.Create(user.Student).Error
		case models.UserTypeEmployer:
			user.Employer = &models.EmployerProfile{UserID: user.ID, CompanyName: req.CompanyName}
			return tx.Create(user.Employer).Error
		case models.UserTypeAdmin:
			user.Admin = &models.AdminProfile{UserID: user.ID, AdminName: req.AdminName}
			return tx.Create(user.Admin).Error
		}
		return ErrInvalidUserType
	})
	if err != nil {
		// The count check above races with concurrent signups; the unique
		// index on email is what actually decides.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies email, password and userType all match one stored row.
func (s *AccountService) Login(req *dtos.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ? AND user_type = ?", req.Email, req.UserType).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.loadProfile(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AccountService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadProfile(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes the User row and the type-specific profile row
// together; either both land or neither does.
func (s *AccountService) UpdateProfile(userID uint, req *dtos.ProfileUpdateRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if req.Address != nil {
			userUpdates["address"] = *req.Address
		}
		if req.Phone != nil {
			userUpdates["phone"] = *req.Phone
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		switch user.UserType {
		case models.UserTypeStudent:
			if req.FullName != nil {
				return tx.Model(&models.StudentProfile{}).Where("user_id = ?", userID).
					Update("full_name", *req.FullName).Error
			}
		case models.UserTypeEmployer:
			if req.CompanyName != nil {
				return tx.Model(&models.EmployerProfile{}).Where("user_id = ?", userID).
					Update("company_name", *req.CompanyName).Error
			}
		case models.UserTypeAdmin:
			if req.AdminName != nil {
				return tx.Model(&models.AdminProfile{}).Where("user_id = ?", userID).
					Update("admin_name", *req.AdminName).Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// loadProfile fetches the one profile row the user's type points at.
func (s *AccountService) loadProfile(user *models.User) error {
	switch user.UserType {
	case models.UserTypeStudent:
		var p models.StudentProfile
		if err := s.DB.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
			return err
		}
		user.Student = &p
	case models.UserTypeEmployer:
		var p models.EmployerProfile
		if err := s.DB.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
			return err
		}
		user.Employer = &p
	case models.UserTypeAdmin:
		var p models.AdminProfile
		if err := s.DB.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
			return err
		}
		user.Admin = &p
	}
	return nil
}
