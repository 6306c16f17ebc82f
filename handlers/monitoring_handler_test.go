package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monitoringRow map[string]interface{}

func TestMonitoringShapesByRole(t *testing.T) {
	app := setupApp(t)
	lecturer := createUser(t, "mpho", "secret123", "lecturer")
	otherLecturer := createUser(t, "lerato", "secret123", "lecturer")
	student := createUser(t, "naleli", "secret123", "student")
	prl := createUser(t, "palesa", "secret123", "prl")
	pl := createUser(t, "teboho", "secret123", "pl")

	submitReport(t, app, tokenFor(t, lecturer), map[string]interface{}{
		"course_name":       "Databases",
		"week_of_reporting": "Week 1",
	})
	submitReport(t, app, tokenFor(t, otherLecturer), map[string]interface{}{
		"course_name":       "Networks",
		"week_of_reporting": "Week 2",
	})

	// Student: all reports, attendance columns only.
	resp := doRequest(t, app, http.MethodGet, "/api/monitoring", tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var studentRows []monitoringRow
	decodeBody(t, resp, &studentRows)
	require.Len(t, studentRows, 2)
	assert.Contains(t, studentRows[0], "course_name")
	assert.Contains(t, studentRows[0], "actual_students")
	assert.NotContains(t, studentRows[0], "feedback")
	assert.NotContains(t, studentRows[0], "lecturer_name")
	assert.NotContains(t, studentRows[0], "rating")

	// Lecturer: own reports only, feedback visible.
	resp = doRequest(t, app, http.MethodGet, "/api/monitoring", tokenFor(t, lecturer), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lecturerRows []monitoringRow
	decodeBody(t, resp, &lecturerRows)
	require.Len(t, lecturerRows, 1)
	assert.Equal(t, "Databases", lecturerRows[0]["course_name"])
	assert.Contains(t, lecturerRows[0], "feedback")
	assert.NotContains(t, lecturerRows[0], "lecturer_name")
	assert.NotContains(t, lecturerRows[0], "rating")

	// prl and pl: everything.
	for _, leader := range []string{tokenFor(t, prl), tokenFor(t, pl)} {
		resp = doRequest(t, app, http.MethodGet, "/api/monitoring", leader, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var leaderRows []monitoringRow
		decodeBody(t, resp, &leaderRows)
		require.Len(t, leaderRows, 2)
		assert.Contains(t, leaderRows[0], "lecturer_name")
		assert.Contains(t, leaderRows[0], "feedback")
		assert.Contains(t, leaderRows[0], "rating")
	}
}

func TestMonitoringOrderedByWeekDescending(t *testing.T) {
	app := setupApp(t)
	lecturer := createUser(t, "mpho", "secret123", "lecturer")
	student := createUser(t, "naleli", "secret123", "student")

	submitReport(t, app, tokenFor(t, lecturer), map[string]interface{}{"week_of_reporting": "Week 1"})
	submitReport(t, app, tokenFor(t, lecturer), map[string]interface{}{"week_of_reporting": "Week 3"})
	submitReport(t, app, tokenFor(t, lecturer), map[string]interface{}{"week_of_reporting": "Week 2"})

	resp := doRequest(t, app, http.MethodGet, "/api/monitoring", tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []struct {
		WeekOfReporting string `json:"week_of_reporting"`
	}
	decodeBody(t, resp, &rows)
	require.Len(t, rows, 3)
	assert.Equal(t, "Week 3", rows[0].WeekOfReporting)
	assert.Equal(t, "Week 2", rows[1].WeekOfReporting)
	assert.Equal(t, "Week 1", rows[2].WeekOfReporting)
}
