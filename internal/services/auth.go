package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/torvund/wildskills-backend/internal/domain"
	userrepo "github.com/torvund/wildskills-backend/internal/data/repos/user"
	"github.com/torvund/wildskills-backend/internal/pkg/apierr"
	"github.com/torvund/wildskills-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/torvund/wildskills-backend/internal/pkg/errors"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"github.com/torvund/wildskills-backend/internal/utils"
)

// AccessClaims is the token payload: user id as subject plus username and
// admin flag. Tokens are stateless; nothing is persisted server-side.
type AccessClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) (*types.User, error)
	LoginUser(ctx context.Context, username, password string) (string, *types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     userrepo.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("a username is required to register"))
	}
	if user.Password == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("a password is required to register"))
	}

	taken, err := as.userRepo.UsernameExists(ctx, nil, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, apierr.New(http.StatusBadRequest, "registration_failed", fmt.Errorf("username is already taken"))
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	user.ID = uuid.New()
	created, err := as.userRepo.Create(ctx, nil, []*types.User{user})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created[0], nil
}

// LoginUser verifies credentials and issues an access token. Unknown
// username and wrong password fail identically so callers cannot probe for
// which usernames exist.
func (as *authService) LoginUser(ctx context.Context, username, password string) (string, *types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", pkgerrors.ErrInvalidCredentials)
	}

	users, err := as.userRepo.GetByUsernames(ctx, nil, []string{username})
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}
	if len(users) == 0 {
		return "", nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", pkgerrors.ErrInvalidCredentials)
	}

	user := users[0]
	if !utils.CheckPassword(user.Password, password) {
		return "", nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", pkgerrors.ErrInvalidCredentials)
	}

	token, err := as.generateAccessToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, user, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// SetContextFromToken verifies signature and expiry, then attaches the
// token's identity to the context. Any parse or validation failure is
// returned to the caller (the middleware maps it to a 403).
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*AccessClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("invalid or expired token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}
	rd := &ctxutil.RequestData{
		UserID:   userID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
