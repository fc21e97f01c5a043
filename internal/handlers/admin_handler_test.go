package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployerDirectory(t *testing.T) {
	r := newTestRouter(t)
	signup(t, r, "stu@b.com", "student", "Sam Tran")
	empID := signup(t, r, "emp@b.com", "employer", "Acme")

	w := doJSON(t, r, http.MethodGet, "/employers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	employers := decodeList(t, w)
	require.Len(t, employers, 1)
	assert.Equal(t, "Acme", employers[0]["companyName"])
	assert.Equal(t, "emp@b.com", employers[0]["email"])

	w = doJSON(t, r, http.MethodGet, "/employers/"+itoa(empID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", decodeBody(t, w)["companyName"])

	w = doJSON(t, r, http.MethodGet, "/employers/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourses(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/courses", map[string]string{
		"description": "no title",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/courses", map[string]string{
		"title":       "Resume Writing",
		"description": "How to write a resume",
		"category":    "Career",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	assert.Equal(t, true, created["isActive"])

	w = doJSON(t, r, http.MethodPost, "/admin/courses", map[string]string{
		"title": "Interview Prep",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = doJSON(t, r, http.MethodGet, "/admin/active-courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["activeCourses"])
}

func TestUserStats(t *testing.T) {
	r := newTestRouter(t)
	signup(t, r, "s1@b.com", "student", "S One")
	signup(t, r, "s2@b.com", "student", "S Two")
	signup(t, r, "e1@b.com", "employer", "Acme")

	w := doJSON(t, r, http.MethodGet, "/admin/user-stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)
	assert.Equal(t, float64(2), stats["students"])
	assert.Equal(t, float64(1), stats["employers"])
	assert.Equal(t, float64(0), stats["admins"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
