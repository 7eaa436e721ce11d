package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/apierr"
	pkgerrors "github.com/torvund/wildskills-backend/internal/pkg/errors"
	"github.com/torvund/wildskills-backend/internal/services"
)

type stubAuthService struct {
	user      *types.User
	token     string
	loginErr  error
	registErr error
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	if s.registErr != nil {
		return nil, s.registErr
	}
	user.ID = uuid.New()
	return user, nil
}

func (s *stubAuthService) LoginUser(ctx context.Context, username, password string) (string, *types.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	return ctx, nil
}

func (s *stubAuthService) GetAccessTTL() time.Duration { return time.Hour }

var _ services.AuthService = (*stubAuthService)(nil)

func newAuthTestRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func TestLogin_ResponseOmitsSensitiveFields(t *testing.T) {
	user := &types.User{
		ID:               uuid.New(),
		Username:         "bear",
		Password:         "$2a$10$hash",
		SecurityQuestion: "first pet",
		SecurityAnswer:   "rex",
		IsAdmin:          true,
	}
	r := newAuthTestRouter(&stubAuthService{user: user, token: "signed-token"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"bear","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %v", body["token"])
	}
	userObj, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, got %v", body["user"])
	}
	if userObj["username"] != "bear" {
		t.Fatalf("expected username in user payload, got %v", userObj["username"])
	}
	raw := w.Body.String()
	for _, leaked := range []string{"$2a$10$hash", "first pet", "rex"} {
		if strings.Contains(raw, leaked) {
			t.Fatalf("sensitive value %q leaked into login response: %s", leaked, raw)
		}
	}
}

func TestLogin_InvalidCredentialsStatusAndCode(t *testing.T) {
	loginErr := apierr.New(http.StatusUnauthorized, "invalid_credentials", pkgerrors.ErrInvalidCredentials)
	r := newAuthTestRouter(&stubAuthService{loginErr: loginErr})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"bear","password":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "invalid_credentials" {
		t.Fatalf("expected code invalid_credentials, got %q", body.Error.Code)
	}
}

func TestLogin_MalformedBodyIs400(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegister_ReturnsUserID(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"otter","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if id, ok := body["userId"].(string); !ok || id == "" {
		t.Fatalf("expected a user id, got %v", body["userId"])
	}
}

func TestRegister_UnexpectedErrorHidesDetail(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{registErr: pkgerrors.ErrDataAccess})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"otter","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "database error") {
		t.Fatalf("expected generic error body, got %s", w.Body.String())
	}
}
