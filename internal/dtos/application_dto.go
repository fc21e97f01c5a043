package dtos

// ApplicationRequest is the formData JSON field of the multipart apply
// request. The resume and cover letter files travel as separate parts.
type ApplicationRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required"`
	PhoneNumber         string `json:"phoneNumber" binding:"required"`
	Address             string `json:"address" binding:"required"`
	Position            string `json:"position" binding:"required"`
	DesiredCompensation string `json:"desiredCompensation" binding:"required"`

	// Optional applicant account, so their applied-jobs list can find this.
	UserID *uint `json:"userId"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type CourseCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
