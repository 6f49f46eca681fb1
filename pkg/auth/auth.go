package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
)

type (
	UserKey  struct{}
	TokenKey struct{}
)

var (
	ErrUnauthenticated    = errors.New("authentication credentials were not provided or are invalid")
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
	ErrBlocked            = errors.New("account is blocked")
	ErrNoSecret           = errors.New("no secret key configured")
)

type TokenRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	AddAuthToken(ctx context.Context, token model.AuthToken) error
	GetAuthToken(ctx context.Context, key uuid.UUID) (*model.AuthToken, error)
	DeleteAuthToken(ctx context.Context, key uuid.UUID) error
}

type Manager struct {
	conf   *configs.Config
	repo   TokenRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthManager(conf *configs.Config, repo TokenRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger, now: time.Now}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login checks the credentials and issues a new token for the user.
func (a *Manager) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := a.repo.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if !CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	if user.IsBlocked {
		a.logger.Warn("blocked user tried to log in", zap.Uint("user_id", user.ID))

		return "", ErrBlocked
	}

	return a.issueToken(ctx, user)
}

func (a *Manager) issueToken(ctx context.Context, user *model.User) (string, error) {
	if len(a.conf.Auth.SecretKey) == 0 {
		return "", ErrNoSecret
	}

	key := uuid.New()
	now := a.now()

	claims := jwt.MapClaims{
		"email": user.Email,
		"jti":   key.String(),
		"iat":   now.Unix(),
	}
	if a.conf.Auth.TokenTTL > 0 {
		claims["exp"] = now.Add(a.conf.Auth.TokenTTL).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.Auth.SecretKey))
	if err != nil {
		return "", err
	}

	if err := a.repo.AddAuthToken(ctx, model.AuthToken{Key: key, UserID: user.ID}); err != nil {
		return "", err
	}

	return signed, nil
}

// Logout revokes the token the current request was authenticated with.
func (a *Manager) Logout(ctx context.Context) error {
	key, ok := ctx.Value(TokenKey{}).(uuid.UUID)
	if !ok {
		return ErrUnauthenticated
	}

	return a.repo.DeleteAuthToken(ctx, key)
}

// Authenticate resolves the user behind an Authorization header value.
func (a *Manager) Authenticate(ctx context.Context, authorization string) (*model.User, uuid.UUID, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := extractToken(authorization)
	if err != nil {
		return nil, uuid.Nil, err
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Info("error parsing token", zap.Error(err))

		return nil, uuid.Nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, uuid.Nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	email, _ := claims["email"].(string)
	jti, _ := claims["jti"].(string)

	key, err := uuid.Parse(jti)
	if err != nil || len(email) == 0 {
		return nil, uuid.Nil, fmt.Errorf("%w: malformed token claims", ErrUnauthenticated)
	}

	stored, err := a.repo.GetAuthToken(ctx, key)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: token revoked", ErrUnauthenticated)
	}

	if stored.User.Email != email || stored.User.IsBlocked {
		return nil, uuid.Nil, fmt.Errorf("%w: token does not match an active user", ErrUnauthenticated)
	}

	return &stored.User, key, nil
}

func extractToken(authorization string) (string, error) {
	for _, prefix := range []string{"Token ", "token ", "Bearer ", "bearer "} {
		if token, found := strings.CutPrefix(authorization, prefix); found {
			return token, nil
		}
	}

	return "", fmt.Errorf("%w: authorization format must be Token {token}", ErrUnauthenticated)
}

// Middleware attaches the authenticated user, if any, to the request context.
// Requests without an Authorization header continue anonymously.
func (a *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if len(authorization) == 0 {
			c.Next()

			return
		}

		user, key, err := a.Authenticate(c.Request.Context(), authorization)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

			return
		}

		ctx := context.WithValue(WithUser(c.Request.Context(), user), TokenKey{}, key)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireUser rejects anonymous requests.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})

			return
		}

		c.Next()
	}
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey{}).(*model.User)

	return user, ok && user != nil
}
