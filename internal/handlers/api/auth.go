package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/gameday/internal/log"
)

type contextKey string

const adminSubjectKey contextKey = "adminSubject"

const adminRole = "admin"

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func (s *Server) buildToken() (string, *jwt.NumericDate, error) {
	now := s.clock.Now()
	expires := jwt.NewNumericDate(now.Add(s.adminTokenTTL))

	claims := adminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminRole,
			ExpiresAt: expires,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.adminTokenSecret)
	return signed, expires, err
}

// parseToken validates a bearer token against the signing secret and the server clock
func (s *Server) parseToken(raw string) (*adminClaims, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.adminTokenSecret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims.Role != adminRole {
		return nil, fmt.Errorf("token is not an admin token")
	}

	return claims, nil
}

// isAdminRequest reports whether the request carries a valid admin bearer token
func (s *Server) isAdminRequest(r *http.Request) bool {
	if len(s.adminTokenSecret) == 0 {
		return false
	}

	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" || raw == r.Header.Get("Authorization") {
		return false
	}

	_, err := s.parseToken(raw)
	return err == nil
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.adminTokenSecret) == 0 {
			respondWithError(w, http.StatusForbidden, "Admin access is disabled")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")
		if raw == authHeader {
			respondWithError(w, http.StatusUnauthorized, "Invalid authorization format. Use 'Bearer <token>'")
			return
		}

		claims, err := s.parseToken(raw)
		if err != nil {
			log.Debug("Admin token rejected", zap.Error(err))
			respondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), adminSubjectKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	if len(s.adminPasswordHash) == 0 {
		respondWithError(w, http.StatusForbidden, "Admin login is disabled")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Password is required")
		return
	}

	if bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(req.Password)) != nil {
		log.Warn("Admin login failed", zap.String("remote_addr", clientAddr(r)))
		respondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, expires, err := s.buildToken()
	if err != nil {
		log.Error("Failed to sign admin token", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expires.Time.UTC().Format(time.RFC3339),
	})
}
