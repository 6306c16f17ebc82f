package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
)

func TestCatalogCreateRestrictedToLeaders(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, "naleli", "secret123", "student")
	pl := createUser(t, "teboho", "secret123", "pl")

	for _, path := range []string{"/api/courses", "/api/classes"} {
		resp := doRequest(t, app, http.MethodPost, path, tokenFor(t, student), map[string]interface{}{"name": "anything"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
	resp := doRequest(t, app, http.MethodPost, "/api/lectures", tokenFor(t, student), map[string]interface{}{"title": "anything"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Reads stay open to every authenticated role.
	resp = doRequest(t, app, http.MethodPost, "/api/courses", tokenFor(t, pl), map[string]interface{}{"name": "Networks"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/courses", tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []models.Course
	decodeBody(t, resp, &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, "Networks", courses[0].Name)
}

func TestCatalogValidation(t *testing.T) {
	app := setupApp(t)
	prl := createUser(t, "palesa", "secret123", "prl")
	token := tokenFor(t, prl)

	resp := doRequest(t, app, http.MethodPost, "/api/courses", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/classes", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/lectures", token, map[string]interface{}{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/modules", token, map[string]interface{}{"name": "Paging"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssignLecturerToCourse(t *testing.T) {
	app := setupApp(t)
	prl := createUser(t, "palesa", "secret123", "prl")
	lecturer := createUser(t, "mpho", "secret123", "lecturer")
	token := tokenFor(t, prl)

	resp := doRequest(t, app, http.MethodPost, "/api/courses", token, map[string]interface{}{"name": "Databases"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, database.DB.First(&course, "name = ?", "Databases").Error)

	resp = doRequest(t, app, http.MethodPut, "/api/courses/"+course.ID.String()+"/assign", token, map[string]interface{}{
		"lecturerId": lecturer.ID.String(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.First(&course, "id = ?", course.ID).Error)
	require.NotNil(t, course.LecturerID)
	assert.Equal(t, lecturer.ID, *course.LecturerID)

	resp = doRequest(t, app, http.MethodPut, "/api/courses/11111111-2222-3333-4444-555555555555/assign", token, map[string]interface{}{
		"lecturerId": lecturer.ID.String(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestModuleCreationRequiresExistingCourse(t *testing.T) {
	app := setupApp(t)
	pl := createUser(t, "teboho", "secret123", "pl")
	token := tokenFor(t, pl)

	resp := doRequest(t, app, http.MethodPost, "/api/modules", token, map[string]interface{}{
		"course_id": "11111111-2222-3333-4444-555555555555",
		"name":      "Memory Management",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/courses", token, map[string]interface{}{"name": "Operating Systems"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, database.DB.First(&course, "name = ?", "Operating Systems").Error)

	resp = doRequest(t, app, http.MethodPost, "/api/modules", token, map[string]interface{}{
		"course_id": course.ID.String(),
		"name":      "Memory Management",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var modules []models.Module
	require.NoError(t, database.DB.Find(&modules).Error)
	require.Len(t, modules, 1)
	assert.Equal(t, course.ID, modules[0].CourseID)
}
