package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetSuggestionsCatalogue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/suggestions", withTestUserID(11), GetSuggestions)

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	expectHTTP200(t, resp.Code)

	var out struct {
		Suggestions []map[string]string `json:"suggestions"`
		Count       int                 `json:"count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Count != 7 || len(out.Suggestions) != 7 {
		t.Fatalf("expected 7 suggestions, got %d", out.Count)
	}
	if out.Suggestions[0]["destination"] == "" || out.Suggestions[0]["description"] == "" {
		t.Fatalf("suggestion fields missing: %#v", out.Suggestions[0])
	}
}
