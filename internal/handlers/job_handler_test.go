package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobRequiresEveryField(t *testing.T) {
	r := newTestRouter(t)
	employerID := signup(t, r, "emp@b.com", "employer", "Acme")

	required := []string{
		"title", "numPeople", "location", "streetAddress", "description",
		"payLevel", "employmentType", "travelFrequency", "category",
		"companyName", "contactInformation", "user_id",
	}
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			payload := jobPayload(employerID, "Cashier")
			delete(payload, field)
			w := doJSON(t, r, http.MethodPost, "/post-job", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateJobRoundTrips(t *testing.T) {
	r := newTestRouter(t)
	employerID := signup(t, r, "emp@b.com", "employer", "Acme")

	payload := jobPayload(employerID, "Cashier")
	payload["competitionId"] = "COMP-42"
	w := doJSON(t, r, http.MethodPost, "/post-job", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	jobID := itoa(uint(created["id"].(float64)))

	w = doJSON(t, r, http.MethodGet, "/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)

	assert.Equal(t, "Cashier", got["title"])
	assert.Equal(t, float64(3), got["numPeople"])
	assert.Equal(t, "COMP-42", got["competitionId"])
	assert.Nil(t, got["internalClosingDate"])
	assert.Equal(t, "Acme Retail", got["companyName"])
	assert.Equal(t, float64(employerID), got["user_id"])
}

func TestCreateJobAcceptsZeroOpenings(t *testing.T) {
	r := newTestRouter(t)
	employerID := signup(t, r, "emp@b.com", "employer", "Acme")

	payload := jobPayload(employerID, "Waitlist")
	payload["numPeople"] = 0
	w := doJSON(t, r, http.MethodPost, "/post-job", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(0), decodeBody(t, w)["numPeople"])
}

func TestUpdateJob(t *testing.T) {
	r := newTestRouter(t)
	employerID := signup(t, r, "emp@b.com", "employer", "Acme")
	jobID := postJob(t, r, employerID, "Cashier")

	w := doJSON(t, r, http.MethodPut, "/jobs/"+itoa(jobID), map[string]any{
		"title":     "Senior Cashier",
		"numPeople": 1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "Senior Cashier", body["title"])
	assert.Equal(t, float64(1), body["numPeople"])
	// Untouched fields survive a partial update.
	assert.Equal(t, "Toronto", body["location"])

	w = doJSON(t, r, http.MethodPut, "/jobs/9999", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteJob(t *testing.T) {
	r := newTestRouter(t)
	employerID := signup(t, r, "emp@b.com", "employer", "Acme")
	jobID := postJob(t, r, employerID, "Cashier")

	w := doJSON(t, r, http.MethodDelete, "/jobs/"+itoa(jobID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/jobs/"+itoa(jobID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	w = doJSON(t, r, http.MethodDelete, "/jobs/"+itoa(jobID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListJobsByEmployer(t *testing.T) {
	r := newTestRouter(t)
	first := signup(t, r, "one@b.com", "employer", "One Inc")
	second := signup(t, r, "two@b.com", "employer", "Two Inc")
	postJob(t, r, first, "Cashier")
	postJob(t, r, first, "Stocker")
	postJob(t, r, second, "Driver")

	w := doJSON(t, r, http.MethodGet, "/jobs/employer/"+itoa(first), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = doJSON(t, r, http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}
