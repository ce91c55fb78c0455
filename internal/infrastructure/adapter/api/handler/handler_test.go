package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter returns a router whose requests run as caller when caller is not empty
func newTestRouter(caller string) *gin.Engine {
	r := gin.New()
	if caller != "" {
		r.Use(func(c *gin.Context) { c.Set(middleware.AuthEmailKey, caller) })
	}
	return r
}

func doJSON(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type errorBody struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details"`
	Code    int            `json:"code"`
}
