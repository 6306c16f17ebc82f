package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
	"github.com/thabisomokotjo/luct_reporting/routes"
)

const testSecret = "test-secret"

// setupApp wires a fresh in-memory database and a fiber app with the full
// route table. Each test gets its own database, named after the test so
// parallel packages cannot collide.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	os.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("setupApp() open db failed: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Class{},
		&models.Lecture{},
		&models.Module{},
		&models.Report{},
		&models.Rating{},
	)
	if err != nil {
		t.Fatalf("setupApp() migrate failed: %v", err)
	}
	database.DB = db

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.ReportRoutes(app)
	routes.RatingRoutes(app)
	routes.MonitoringRoutes(app)
	routes.CatalogRoutes(app)
	return app
}

func createUser(t *testing.T, username, password, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("createUser() hash failed: %v", err)
	}
	user := models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("tokenFor() failed: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("doRequest() encode failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("doRequest() %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("decodeBody() read failed: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decodeBody() unmarshal failed: %v (body: %s)", err, data)
	}
}

func submitReport(t *testing.T, app *fiber.App, token string, overrides map[string]interface{}) uuid.UUID {
	t.Helper()

	body := map[string]interface{}{
		"faculty_name":              "FICT",
		"class_name":                "BSCIT-Y1",
		"week_of_reporting":         "Week 3",
		"date_of_lecture":           "2025-09-12",
		"course_name":               "Operating Systems",
		"course_code":               "OS101",
		"actual_students":           40,
		"total_registered_students": 50,
	}
	for k, v := range overrides {
		body[k] = v
	}

	resp := doRequest(t, app, http.MethodPost, "/api/reports", token, body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submitReport() got status %d", resp.StatusCode)
	}

	var out struct {
		ReportID string `json:"reportId"`
	}
	decodeBody(t, resp, &out)

	id, err := uuid.Parse(out.ReportID)
	if err != nil {
		t.Fatalf("submitReport() bad report id %q: %v", out.ReportID, err)
	}
	return id
}
