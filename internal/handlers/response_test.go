package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{"wedding type not found", fmt.Errorf("wrap: %w", engine.ErrWeddingTypeNotFound), http.StatusNotFound, "wedding_type_not_found"},
		{"no rule", engine.ErrNoRuleForCombination, http.StatusNotFound, "no_rule_for_combination"},
		{"invalid color", fmt.Errorf("parse: %w", engine.ErrInvalidColorExpression), http.StatusBadRequest, "invalid_color"},
		{"generic", fmt.Errorf("something broke"), http.StatusBadRequest, "bad_request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			RespondServiceError(c, tc.err)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var envelope ErrorEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if envelope.Error.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", envelope.Error.Code, tc.wantCode)
			}
			if envelope.Error.Message == "" {
				t.Errorf("expected a message")
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HealthCheck(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", w.Body.String(), "ok")
	}
}
