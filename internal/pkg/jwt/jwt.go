package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
)

const tokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("token is missing required claims")

// Claims is the decoded payload of an access token.
type Claims struct {
	UserID    string
	Role      user.Role
	Type      string
	ExpiresAt time.Time
}

type Service interface {
	GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error)
	Decode(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpirationTime: expiration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"id":   userID,
		"role": string(role),
		"type": tokenTypeAccess,
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

// Decode verifies the signature and expiry of tokenString and returns its claims.
func (j *JWTService) Decode(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}, err
	}
	return claimsFromMap(claims, token.Expiration())
}

// ClaimsFromContext reads the claims that jwtauth.Verifier stored on the request context.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}
	if token == nil {
		return Claims{}, ErrInvalidClaims
	}
	return claimsFromMap(claims, token.Expiration())
}

func claimsFromMap(claims map[string]interface{}, exp time.Time) (Claims, error) {
	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	tokenType, _ := claims["type"].(string)
	if id == "" || role == "" {
		return Claims{}, ErrInvalidClaims
	}
	return Claims{
		UserID:    id,
		Role:      user.Role(role),
		Type:      tokenType,
		ExpiresAt: exp,
	}, nil
}
