package dtos

// SignupRequest arrives as multipart form data so the optional profile
// picture can ride along in the same request.
type SignupRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	UserType string `form:"userType" binding:"required"`

	Address string `form:"address"`
	Phone   string `form:"phone"`

	// Exactly one of these matters, picked by UserType.
	FullName    string `form:"fullName"`
	CompanyName string `form:"companyName"`
	AdminName   string `form:"adminName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// ProfileUpdateRequest updates only the fields that were sent.
type ProfileUpdateRequest struct {
	Address *string `json:"address"`
	Phone   *string `json:"phone"`

	FullName    *string `json:"fullName"`
	CompanyName *string `json:"companyName"`
	AdminName   *string `json:"adminName"`
}
