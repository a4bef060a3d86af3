package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Pooji-A/travelitineraryproject/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`)).
		WithArgs("demo_user", "user@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(101, time.Now()))

	router := gin.New()
	router.POST("/auth/register", Register)

	resp := postJSON(t, router, "/auth/register", map[string]string{
		"username": "demo_user",
		"email":    "user@example.com",
		"password": "Secret123",
	})
	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	user, _ := out["user"].(map[string]any)
	if user == nil || int(user["id"].(float64)) != 101 {
		t.Fatalf("expected registered user id 101, got %#v", out["user"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`)).
		WithArgs("demo_user", "user@example.com", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	router := gin.New()
	router.POST("/auth/register", Register)

	resp := postJSON(t, router, "/auth/register", map[string]string{
		"username": "demo_user",
		"email":    "user@example.com",
		"password": "Secret123",
	})
	mustStatus(t, resp.Code, http.StatusConflict)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/auth/register", Register)

	resp := postJSON(t, router, "/auth/register", map[string]string{
		"username": "demo_user",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestLoginSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, err := utils.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password FROM users WHERE username = $1`)).
		WithArgs("demo_user").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "email", "password"}).
				AddRow(101, "demo_user", "user@example.com", hashed),
		)

	mock.
		ExpectExec(regexp.QuoteMeta(`INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`)).
		WithArgs(sqlmock.AnyArg(), 101, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := gin.New()
	router.POST("/auth/login", Login)

	resp := postJSON(t, router, "/auth/login", map[string]string{
		"username": "demo_user",
		"password": "Secret123",
	})
	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	token, _ := out["token"].(string)
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, err := utils.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	// Unknown username.
	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password FROM users WHERE username = $1`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}))

	// Known username, wrong password.
	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password FROM users WHERE username = $1`)).
		WithArgs("demo_user").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "email", "password"}).
				AddRow(101, "demo_user", "user@example.com", hashed),
		)

	router := gin.New()
	router.POST("/auth/login", Login)

	unknown := postJSON(t, router, "/auth/login", map[string]string{
		"username": "nobody",
		"password": "Secret123",
	})
	mustStatus(t, unknown.Code, http.StatusUnauthorized)

	wrongPassword := postJSON(t, router, "/auth/login", map[string]string{
		"username": "demo_user",
		"password": "WrongSecret",
	})
	mustStatus(t, wrongPassword.Code, http.StatusUnauthorized)

	if unknown.Body.String() != wrongPassword.Body.String() {
		t.Fatalf("login failure bodies differ: %q vs %q", unknown.Body.String(), wrongPassword.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	token, err := utils.GenerateToken(101, "3f6b2e3c-0a3e-4c18-93a5-6f1f6f9d2f41", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Session row is already gone; terminate still succeeds.
	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE id = $1`)).
		WithArgs("3f6b2e3c-0a3e-4c18-93a5-6f1f6f9d2f41").
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := gin.New()
	router.POST("/auth/logout", Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	expectHTTP200(t, resp.Code)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
