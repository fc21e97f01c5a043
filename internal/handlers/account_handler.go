package handlers

import (
	"net/http"

	"github.com/careerbridge/jobboard-backend/internal/dtos"
	"github.com/careerbridge/jobboard-backend/internal/models"
	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/careerbridge/jobboard-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	Accounts *services.AccountService
	Uploader storage.Uploader
}

func NewAccountHandler(accounts *services.AccountService, uploader storage.Uploader) *AccountHandler {
	return &AccountHandler{Accounts: accounts, Uploader: uploader}
}

// Signup is the POST /signup endpoint. Multipart so the optional
// profilePicture can come along with the form fields.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "email, password and userType are required")
		return
	}

	var pictureURL *string
	data, filename, err := readFormFile(c, "profilePicture")
	if err != nil {
		failInternal(c, err)
		return
	}
	if data != nil {
		url, err := h.Uploader.Upload(c.Request.Context(), data, filename)
		if err != nil {
			failInternal(c, err)
			return
		}
		pictureURL = &url
	}

	user, err := h.Accounts.Signup(&req, pictureURL)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	resp := gin.H{
		"userId":            user.ID,
		"userType":          user.UserType,
		"profilePictureUrl": user.ProfilePictureURL,
	}
	resp[profileNameKey(user.UserType)] = user.DisplayName()
	c.JSON(http.StatusOK, resp)
}

// Login is the POST /login endpoint.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email, password and userType are required")
		return
	}

	user, err := h.Accounts.Login(&req)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":   user.ID,
		"userType": user.UserType,
		"name":     user.DisplayName(),
	})
}

// GetProfile is the GET /profile/:userId endpoint.
func (h *AccountHandler) GetProfile(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.Accounts.GetProfile(userID)
	if err != nil {
		failService(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile is the PUT /profile/:userId endpoint.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	user, err := h.Accounts.UpdateProfile(userID, &req)
	if err != nil {
		failService(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func profileNameKey(t models.UserType) string {
	switch t {
	case models.UserTypeEmployer:
		return "companyName"
	case models.UserTypeAdmin:
		return "adminName"
	default:
		return "fullName"
	}
}
