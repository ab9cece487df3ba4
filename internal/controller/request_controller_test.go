package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parish-be/internal/entity"
	"parish-be/internal/model"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/repository/unitofwork"
	"parish-be/internal/service"
)

const testSecret = "controller-test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ServiceRequest{},
		&model.SacramentRecord{},
		&model.IssuedCertificate{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Id:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         string(entity.UserRoleAdmin),
	}).Error)

	factory := unitofwork.NewRepositoryFactory(db)
	requestSvc := service.NewRequestService(factory, nil)
	certSvc := service.NewCertificateService(factory, nil, 10, 48)
	authSvc := service.NewAuthService(factory, testSecret, 12)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	NewAuthController(authSvc).RegisterRoutes(api)
	NewRequestController(requestSvc, certSvc).RegisterRoutes(api)
	NewCertificateController(certSvc).RegisterRoutes(api)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestSubmitRequestIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/requests", "", fiber.Map{
		"category":       "SACRAMENT",
		"service_type":   "Baptism",
		"requester_name": "Ana Smith",
		"contact_info":   "09171234567",
		"details":        "Child: Baby Boy Smith.",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PENDING", data["status"])
}

func TestSubmitRequestValidation(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/requests", "", fiber.Map{
		"category":     "WRONG",
		"service_type": "Baptism",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/certificates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/api/requests", "", fiber.Map{
		"category":       "SACRAMENT",
		"service_type":   "Baptism",
		"requester_name": "Ana Smith",
		"contact_info":   "ana@email.com",
		"details":        "Child: Baby Boy Smith.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(string)

	resp, body = doJSON(t, app, http.MethodPatch, "/api/requests/"+id, token, fiber.Map{
		"status":             "COMPLETED",
		"confirmed_schedule": "2023-12-10 10:00 AM",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "COMPLETED", body["data"].(map[string]interface{})["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/requests?status=COMPLETED", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)
}

func TestRequestIdValidation(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/requests/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/requests/"+uuid.New().String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRejectedStatusValueOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/api/requests", "", fiber.Map{
		"category":       "CERTIFICATE",
		"service_type":   "Baptismal Certificate",
		"requester_name": "Juan Dela Cruz",
		"contact_info":   "juan@email.com",
		"details":        "For employment.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/requests/"+id, token, fiber.Map{
		"status": "DONE",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIssueCertificateOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/api/requests", "", fiber.Map{
		"category":       "CERTIFICATE",
		"service_type":   "Baptismal Certificate",
		"requester_name": "Maria Dizon",
		"contact_info":   "maria@email.com",
		"details":        "Carlos Dizon, baptized 1995.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/requests/"+id+"/issue-certificate", token, fiber.Map{
		"delivery_method": "PICKUP",
		"notes":           "ID Presented",
		"issued_by":       "Administrator",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cert := body["data"].(map[string]interface{})
	assert.Equal(t, "PENDING_UPLOAD", cert["status"])
	assert.Equal(t, "Carlos Dizon, baptized 1995.", cert["recipient_name"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/requests/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "COMPLETED", body["data"].(map[string]interface{})["status"])

	// Download before any upload is a miss.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/certificates/"+cert["id"].(string)+"/download", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
