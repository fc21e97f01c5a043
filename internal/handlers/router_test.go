package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/careerbridge/jobboard-backend/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUploader keeps blob storage out of the tests; the URL it hands
// back is stable so responses can be asserted.
type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, _ []byte, filename string) (string, error) {
	return "http://files.local/uploads/" + filename, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would get its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	RegisterRoutes(r, db, fakeUploader{})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	return doRequest(t, r, method, path, "application/json", body)
}

func doForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, r, http.MethodPost, path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signup registers an account through the route and returns its user id.
func signup(t *testing.T, r *gin.Engine, email, userType, name string) uint {
	t.Helper()
	form := url.Values{
		"email":    {email},
		"password": {"secret123"},
		"userType": {userType},
	}
	switch userType {
	case "student":
		form.Set("fullName", name)
	case "employer":
		form.Set("companyName", name)
	case "admin":
		form.Set("adminName", name)
	}
	w := doForm(t, r, "/signup", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["userId"].(float64))
}

// postJob creates a valid job for the employer and returns its id.
func postJob(t *testing.T, r *gin.Engine, employerID uint, title string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/post-job", jobPayload(employerID, title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func jobPayload(employerID uint, title string) map[string]any {
	return map[string]any{
		"title":              title,
		"numPeople":          3,
		"location":           "Toronto",
		"streetAddress":      "12 King St W",
		"description":        "Seasonal retail position",
		"payLevel":           "Level 2",
		"employmentType":     "Part-time",
		"travelFrequency":    "None",
		"category":           "Retail",
		"companyName":        "Acme Retail",
		"contactInformation": "hr@acme.example",
		"user_id":            employerID,
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// multipartBody builds a multipart request body with string fields and
// file parts.
func multipartBody(t *testing.T, fields map[string]string, files map[string][2]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, nameAndContent := range files {
		fw, err := mw.CreateFormFile(field, nameAndContent[0])
		require.NoError(t, err)
		_, err = fw.Write([]byte(nameAndContent[1]))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
