package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newPanickingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.POST("/boom", func(c *gin.Context) {
		panic("something broke")
	})
	return router
}

// TestRecoveryJSON verifies a panic still yields a well-formed JSON
// 500 for structured callers.
func TestRecoveryJSON(t *testing.T) {
	router := newPanickingRouter()

	req := httptest.NewRequest(http.MethodPost, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"Internal error"`) {
		t.Errorf("body = %s, want Internal error", body)
	}
	if !strings.Contains(body, "something broke") {
		t.Errorf("body = %s, want the fault detail", body)
	}
}

// TestRecoveryText verifies browser callers get short plain text and
// never a stack trace.
func TestRecoveryText(t *testing.T) {
	router := newPanickingRouter()

	req := httptest.NewRequest(http.MethodPost, "/boom", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "Internal error:") {
		t.Errorf("body = %q, want plain-text internal error", body)
	}
	if strings.Contains(body, "goroutine") {
		t.Errorf("stack trace leaked to the caller: %s", body)
	}
}
