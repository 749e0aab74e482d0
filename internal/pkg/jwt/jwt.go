package jwt

import (
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("token claims are missing or malformed")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID   int64
	Username string
	Role     user.Role
}

type Service interface {
	GenerateAccessToken(userID int64, username string, role user.Role) (token string, expiresAt int64, err error)
	ParseClaims(claims map[string]interface{}) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, username string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	issuedAt := j.now()
	expiresAt = issuedAt.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"id":       userID,
		"username": username,
		"role":     string(role),
		"type":     TokenTypeAccess,
		"jti":      uuid.NewString(),
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseClaims reads the identity out of verified token claims.
// Numeric claims decode as float64 from JSON.
func (j *JWTService) ParseClaims(claims map[string]interface{}) (Claims, error) {
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != TokenTypeAccess {
		return Claims{}, ErrInvalidClaims
	}

	var id int64
	switch v := claims["id"].(type) {
	case float64:
		id = int64(v)
	case int64:
		id = v
	case int:
		id = int64(v)
	default:
		return Claims{}, ErrInvalidClaims
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return Claims{}, ErrInvalidClaims
	}
	role, _ := claims["role"].(string)

	return Claims{UserID: id, Username: username, Role: user.Role(role)}, nil
}
