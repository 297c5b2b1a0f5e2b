package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func threadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewThreadHandler(nil, zap.NewNop())

	r := gin.New()
	r.GET("/threads", h.List)
	return r
}

func TestThreadListRequiresUserID(t *testing.T) {
	r := threadRouter()

	resp := doJSON(t, r, http.MethodGet, "/threads", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_user_id") {
		t.Fatalf("body = %s, want invalid_user_id", resp.Body.String())
	}
}

func TestThreadListRejectsBadOtherUserID(t *testing.T) {
	r := threadRouter()

	resp := doJSON(t, r, http.MethodGet, "/threads?user_id=5&other_user_id=abc", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_other_user_id") {
		t.Fatalf("body = %s, want invalid_other_user_id", resp.Body.String())
	}
}
