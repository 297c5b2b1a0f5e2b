package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barbershop-api/internal/identity"
)

type fakeVerifier struct {
	verifyFn func(token string) (*identity.Identity, error)
}

func (f *fakeVerifier) VerifyToken(token string) (*identity.Identity, error) {
	return f.verifyFn(token)
}

func authRouter(v identity.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Auth(v))
	r.GET("/protected", func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAuthValidToken(t *testing.T) {
	v := &fakeVerifier{
		verifyFn: func(token string) (*identity.Identity, error) {
			if token != "good-token" {
				t.Fatalf("verifier received %q, want good-token", token)
			}
			return &identity.Identity{Subject: 7}, nil
		},
	}

	resp := serve(authRouter(v), "Bearer good-token")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	v := &fakeVerifier{
		verifyFn: func(token string) (*identity.Identity, error) {
			t.Fatal("verifier should not be called without a header")
			return nil, nil
		},
	}

	resp := serve(authRouter(v), "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	v := &fakeVerifier{
		verifyFn: func(token string) (*identity.Identity, error) {
			t.Fatal("verifier should not be called for a malformed header")
			return nil, nil
		},
	}

	resp := serve(authRouter(v), "Token abc")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthRejectedToken(t *testing.T) {
	v := &fakeVerifier{
		verifyFn: func(token string) (*identity.Identity, error) {
			return nil, identity.ErrUnauthorized
		},
	}

	resp := serve(authRouter(v), "Bearer expired")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}
