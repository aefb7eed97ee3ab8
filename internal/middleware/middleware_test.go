package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestErrorHandler_AlreadyWritten(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		_ = c.Error(errors.New("write failed"))
	})

	rec := doRequest(r, http.MethodGet, "/test", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "partial" {
		t.Errorf("expected body untouched, got %q", rec.Body.String())
	}
}

func TestErrorHandler_LeavesErrorBodyAlone(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": apperrors.ErrWalletNotFound.Code}})
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full")))
	})

	rec := doRequest(r, http.MethodGet, "/test", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != apperrors.ErrWalletNotFound.Code {
		t.Errorf("expected code %s, got %s", apperrors.ErrWalletNotFound.Code, code)
	}
}

func TestErrorHandler_NoError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := doRequest(r, http.MethodGet, "/test", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if parseBody(t, rec)["status"] != "ok" {
		t.Error("expected handler body to pass through")
	}
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	var seen string
	r.GET("/test", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	rec := doRequest(r, http.MethodGet, "/test", nil)
	header := rec.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("expected X-Request-ID header")
	}
	if header != seen {
		t.Errorf("expected context id %q to match header %q", seen, header)
	}
}

func TestRequestLogging_KeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := doRequest(r, http.MethodGet, "/test", map[string]string{"X-Request-ID": "abc-123"})
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("expected incoming id to be kept, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	called := false
	r.PATCH("/test", func(c *gin.Context) { called = true })

	rec := doRequest(r, http.MethodOptions, "/test", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if called {
		t.Error("preflight must not reach the handler")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected Access-Control-Allow-Origin: *")
	}
}

func TestCORS_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := doRequest(r, http.MethodGet, "/test", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected CORS headers on normal requests")
	}
}
