package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestCreateItineraryComputesDayCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	userID := 11
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.
		ExpectQuery(`INSERT INTO itineraries`).
		WithArgs(userID, "Kyoto", start, end, 5, "Temples and gardens").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

	router := gin.New()
	router.POST("/api/itineraries", withTestUserID(userID), CreateItinerary)

	resp := postJSON(t, router, "/api/itineraries", map[string]string{
		"destination": "Kyoto",
		"start_date":  "2024-06-01",
		"end_date":    "2024-06-05",
		"description": "Temples and gardens",
	})
	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	itinerary, _ := out["itinerary"].(map[string]any)
	if itinerary == nil || int(itinerary["num_days"].(float64)) != 5 {
		t.Fatalf("expected num_days=5, got %#v", out["itinerary"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateItinerarySingleDay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	userID := 11
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.
		ExpectQuery(`INSERT INTO itineraries`).
		WithArgs(userID, "Lisbon", day, day, 1, "Day trip").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))

	router := gin.New()
	router.POST("/api/itineraries", withTestUserID(userID), CreateItinerary)

	resp := postJSON(t, router, "/api/itineraries", map[string]string{
		"destination": "Lisbon",
		"start_date":  "2024-01-01",
		"end_date":    "2024-01-01",
		"description": "Day trip",
	})
	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	itinerary, _ := out["itinerary"].(map[string]any)
	if itinerary == nil || int(itinerary["num_days"].(float64)) != 1 {
		t.Fatalf("expected num_days=1, got %#v", out["itinerary"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateItineraryRejectsReversedDates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/itineraries", withTestUserID(11), CreateItinerary)

	resp := postJSON(t, router, "/api/itineraries", map[string]string{
		"destination": "Kyoto",
		"start_date":  "2024-06-05",
		"end_date":    "2024-06-01",
		"description": "Backwards",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestCreateItineraryRejectsBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/itineraries", withTestUserID(11), CreateItinerary)

	resp := postJSON(t, router, "/api/itineraries", map[string]string{
		"destination": "Kyoto",
		"start_date":  "June 1st",
		"end_date":    "2024-06-05",
		"description": "Bad date",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestGetUserItinerariesListsInInsertionOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	userID := 11
	now := time.Now()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.
		ExpectQuery(`SELECT id, user_id, destination, start_date, end_date, num_days, description, created_at`).
		WithArgs(userID).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "destination", "start_date", "end_date", "num_days", "description", "created_at"}).
				AddRow(3, userID, "Kyoto", start, end, 5, "Temples", now).
				AddRow(9, userID, "Lisbon", start, end, 5, "Pasteis", now),
		)

	router := gin.New()
	router.GET("/api/itineraries", withTestUserID(userID), GetUserItineraries)

	req := httptest.NewRequest(http.MethodGet, "/api/itineraries", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	expectHTTP200(t, resp.Code)

	var out struct {
		Itineraries []map[string]any `json:"itineraries"`
		Count       int              `json:"count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Count != 2 || len(out.Itineraries) != 2 {
		t.Fatalf("expected 2 itineraries, got %d", out.Count)
	}
	if out.Itineraries[0]["destination"] != "Kyoto" || out.Itineraries[1]["destination"] != "Lisbon" {
		t.Fatalf("itineraries out of order: %#v", out.Itineraries)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteItineraryNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM itineraries WHERE id = $1`)).
		WithArgs(77).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	router := gin.New()
	router.DELETE("/api/itineraries/:itinerary_id", withTestUserID(11), DeleteItinerary)

	req := httptest.NewRequest(http.MethodDelete, "/api/itineraries/77", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	mustStatus(t, resp.Code, http.StatusNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteItineraryForbiddenForNonOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM itineraries WHERE id = $1`)).
		WithArgs(77).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))

	router := gin.New()
	router.DELETE("/api/itineraries/:itinerary_id", withTestUserID(11), DeleteItinerary)

	req := httptest.NewRequest(http.MethodDelete, "/api/itineraries/77", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	mustStatus(t, resp.Code, http.StatusForbidden)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteItinerarySuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM itineraries WHERE id = $1`)).
		WithArgs(77).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(11))

	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM itineraries WHERE id = $1 AND user_id = $2`)).
		WithArgs(77, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := gin.New()
	router.DELETE("/api/itineraries/:itinerary_id", withTestUserID(11), DeleteItinerary)

	req := httptest.NewRequest(http.MethodDelete, "/api/itineraries/77", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	expectHTTP200(t, resp.Code)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
