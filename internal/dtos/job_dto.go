package dtos

import "time"

type JobCreationRequest struct {
	Title string `json:"title" binding:"required"`

	// Pointer so a posted 0 passes the presence check; required on a
	// plain int would reject the zero value.
	NumPeople *int `json:"numPeople" binding:"required"`

	Location           string `json:"location" binding:"required"`
	StreetAddress      string `json:"streetAddress" binding:"required"`
	Description        string `json:"description" binding:"required"`
	PayLevel           string `json:"payLevel" binding:"required"`
	EmploymentType     string `json:"employmentType" binding:"required"`
	TravelFrequency    string `json:"travelFrequency" binding:"required"`
	Category           string `json:"category" binding:"required"`
	CompanyName        string `json:"companyName" binding:"required"`
	ContactInformation string `json:"contactInformation" binding:"required"`
	UserID             uint   `json:"user_id" binding:"required"`

	// Optional Fields
	CompetitionID       *string    `json:"competitionId"`
	InternalClosingDate *time.Time `json:"internalClosingDate"`
	ExternalClosingDate *time.Time `json:"externalClosingDate"`
}

// JobUpdateRequest is a partial update; nil fields are left untouched.
type JobUpdateRequest struct {
	Title              *string `json:"title"`
	NumPeople          *int    `json:"numPeople"`
	Location           *string `json:"location"`
	StreetAddress      *string `json:"streetAddress"`
	Description        *string `json:"description"`
	PayLevel           *string `json:"payLevel"`
	EmploymentType     *string `json:"employmentType"`
	TravelFrequency    *string `json:"travelFrequency"`
	Category           *string `json:"category"`
	CompanyName        *string `json:"companyName"`
	ContactInformation *string `json:"contactInformation"`

	CompetitionID       *string    `json:"competitionId"`
	InternalClosingDate *time.Time `json:"internalClosingDate"`
	ExternalClosingDate *time.Time `json:"externalClosingDate"`
}
