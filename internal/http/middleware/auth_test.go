package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/ctxutil"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"github.com/torvund/wildskills-backend/internal/services"
)

type stubAuthService struct {
	validToken string
	identity   *ctxutil.RequestData
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	return user, nil
}

func (s *stubAuthService) LoginUser(ctx context.Context, username, password string) (string, *types.User, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString != s.validToken {
		return ctx, errors.New("token rejected")
	}
	return ctxutil.WithRequestData(ctx, s.identity), nil
}

func (s *stubAuthService) GetAccessTTL() time.Duration { return time.Hour }

var _ services.AuthService = (*stubAuthService)(nil)

func newTestRouter(t *testing.T, svc services.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	r := gin.New()
	r.GET("/secret", NewAuthMiddleware(log, svc).RequireAuth(), func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": rd.Username})
	})
	return r
}

func TestRequireAuth_MissingTokenIs401(t *testing.T) {
	r := newTestRouter(t, &stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_MalformedHeaderIs401(t *testing.T) {
	r := newTestRouter(t, &stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Token abcdef")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a non-bearer header, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidTokenIs403(t *testing.T) {
	r := newTestRouter(t, &stubAuthService{validToken: "good"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAuth_ValidTokenReachesHandlerWithIdentity(t *testing.T) {
	identity := &ctxutil.RequestData{UserID: uuid.New(), Username: "bear", IsAdmin: false}
	r := newTestRouter(t, &stubAuthService{validToken: "good", identity: identity})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"username":"bear"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRequireAuth_MissingIdentityOnContextIs403(t *testing.T) {
	r := newTestRouter(t, &stubAuthService{validToken: "good", identity: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when the token carries no identity, got %d", w.Code)
	}
}
