package models

import (
	"time"
)

// UserType is a closed set: every User row is exactly one of these,
// fixed at signup, and decides which profile table the account joins to.
type UserType string

const (
	UserTypeStudent  UserType = "student"
	UserTypeEmployer UserType = "employer"
	UserTypeAdmin    UserType = "admin"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeStudent, UserTypeEmployer, UserTypeAdmin:
		return true
	}
	return false
}

// ApplicationStatus changes only through the explicit status-update route.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email             string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string   `gorm:"not null" json:"-"`
	UserType          UserType `gorm:"size:20;not null" json:"userType"`
	Address           string   `json:"address"`
	Phone             string   `json:"phone"`
	ProfilePictureURL *string  `json:"profilePictureUrl"`

	// Exactly one of these exists, selected by UserType.
	Student  *StudentProfile  `gorm:"foreignKey:UserID" json:"student,omitempty"`
	Employer *EmployerProfile `gorm:"foreignKey:UserID" json:"employer,omitempty"`
	Admin    *AdminProfile    `gorm:"foreignKey:UserID" json:"admin,omitempty"`
}

// DisplayName resolves the profile name field for the user's type.
func (u *User) DisplayName() string {
	switch u.UserType {
	case UserTypeStudent:
		if u.Student != nil {
			return u.Student.FullName
		}
	case UserTypeEmployer:
		if u.Employer != nil {
			return u.Employer.CompanyName
		}
	case UserTypeAdmin:
		if u.Admin != nil {
			return u.Admin.AdminName
		}
	}
	return ""
}

type StudentProfile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName string `gorm:"not null" json:"fullName"`
}

type EmployerProfile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string `gorm:"not null" json:"companyName"`
}

type AdminProfile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	AdminName string `gorm:"not null" json:"adminName"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title               string     `gorm:"not null" json:"title"`
	NumPeople           int        `gorm:"not null" json:"numPeople"`
	Location            string     `gorm:"not null" json:"location"`
	StreetAddress       string     `gorm:"not null" json:"streetAddress"`
	Description         string     `gorm:"type:text;not null" json:"description"`
	CompetitionID       *string    `json:"competitionId"`
	InternalClosingDate *time.Time `json:"internalClosingDate"`
	ExternalClosingDate *time.Time `json:"externalClosingDate"`
	PayLevel            string     `gorm:"not null" json:"payLevel"`
	EmploymentType      string     `gorm:"not null" json:"employmentType"`
	TravelFrequency     string     `gorm:"not null" json:"travelFrequency"`
	Category            string     `gorm:"not null" json:"category"`
	CompanyName         string     `gorm:"not null" json:"companyName"`
	ContactInformation  string     `gorm:"not null" json:"contactInformation"`

	// Posting employer.
	UserID uint `gorm:"not null;index" json:"user_id"`

	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

type Application struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	JobID uint `gorm:"not null;index" json:"jobId"`
	// Optional applicant account; nil for applications submitted without an
	// account. The applied-jobs listing only sees rows that carry one.
	UserID *uint `gorm:"index" json:"userId"`

	FirstName           string            `gorm:"not null" json:"firstName"`
	LastName            string            `gorm:"not null" json:"lastName"`
	Email               string            `gorm:"not null" json:"email"`
	PhoneNumber         string            `gorm:"not null" json:"phoneNumber"`
	Address             string            `gorm:"not null" json:"address"`
	Position            string            `gorm:"not null" json:"position"`
	DesiredCompensation string            `gorm:"not null" json:"desiredCompensation"`
	ResumeURL           *string           `json:"resumePath"`
	CoverLetterURL      *string           `json:"coverLetterPath"`
	Status              ApplicationStatus `gorm:"size:20;default:'Pending'" json:"status"`
	ApplyDate           time.Time         `gorm:"autoCreateTime" json:"applyDate"`
}

type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
