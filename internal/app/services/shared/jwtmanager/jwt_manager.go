package jwtmanager

import (
	"clinicdesk-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the decoded identity carried by the bearer token issued at
// login by the upstream backend.
type Session struct {
	Role     string
	DoctorID int64
}

type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTManager(secret string, tokenTTL time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Generate is used by tests and local tooling; production tokens come
// from the backend's login endpoint with the same secret.
func (j *JWTManager) Generate(session Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":      session.Role,
		"doctor_id": session.DoctorID,
		"exp":       time.Now().Add(j.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return tokenString, nil
}

func (j *JWTManager) Parse(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(jwt.ErrTokenInvalidClaims)
	}

	session := &Session{}
	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}
	if doctorID, ok := claims["doctor_id"].(float64); ok {
		session.DoctorID = int64(doctorID)
	}
	return session, nil
}
