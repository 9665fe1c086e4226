package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mfeldman/termsmith/internal/config"
)

// Claims are the JWT claims carried by admin tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates admin bearer tokens.
type TokenService struct {
	cfg *config.AuthConfig
}

// NewTokenService creates a token service from the auth configuration.
func NewTokenService(cfg *config.AuthConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// IssueToken signs an HS256 token for the admin subject.
func (s *TokenService) IssueToken() (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.TokenTTLHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token string.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

// requireAuth guards a handler behind the admin bearer token.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.errorResponse(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			s.errorResponse(w, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		if _, err := s.tokens.ValidateToken(strings.TrimSpace(parts[1])); err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r)
	}
}

type tokenRequest struct {
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// handleIssueToken exchanges the admin password for a bearer token.
func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.authCfg.VerifyAdminPassword(req.Password); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.tokens.IssueToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	s.jsonResponse(w, http.StatusOK, tokenResponse{
		Token:     token,
		ExpiresIn: s.authCfg.TokenTTLHours * 3600,
	})
}
