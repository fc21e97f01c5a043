package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/careerbridge/jobboard-backend/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// failInternal logs the underlying error in full; the client only ever
// sees the generic message.
func failInternal(c *gin.Context, err error) {
	log.WithError(err).WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error("request failed")
	fail(c, http.StatusInternalServerError, "Something went wrong, please try again later")
}

// failService maps the service error taxonomy onto HTTP statuses.
// notFoundMsg lets each route word its own 404.
func failService(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrEmailTaken):
		fail(c, http.StatusConflict, "This email is already registered. Please use a different email or log in.")
	case errors.Is(err, services.ErrInvalidUserType):
		fail(c, http.StatusBadRequest, "userType must be student, employer, or admin")
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid email, password, or user type")
	case errors.Is(err, services.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, "Status must be Pending, Accepted, or Rejected")
	default:
		failInternal(c, err)
	}
}

// uintParam parses a numeric path parameter, responding 400 itself when
// the value is garbage.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// uintQuery parses an optional numeric query parameter; nil when absent.
func uintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	u := uint(v)
	return &u, true
}

// readFormFile reads an optional multipart file part fully into memory.
// A missing part is not an error; data comes back nil.
func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
