package api

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/storefront-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

func newAuthHandler(passwordHash string, secret []byte, ttl time.Duration) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	if passwordHash == "" {
		logger.Warn().Msg("BACKEND_PASSWORD_HASH not set, admin login is disabled")
	}

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		passwordHash: []byte(passwordHash),
		secret:       secret,
		ttl:          ttl,
	}
}

// login exchanges the backend password for an admin token
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Backend password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Missing password"
// @Failure 401 {object} ErrorResponse "Unauthorized - Wrong password"
// @Failure 403 {object} ErrorResponse "Forbidden - Login disabled"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(h.passwordHash) == 0 {
			h.responder.WriteError(w, errs.NewForbiddenError("admin login is disabled"))
			return
		}

		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, expiresAt, err := issueAdminToken(h.secret, h.ttl, time.Now())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("sign token", err))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt})
	}
}

func issueAdminToken(secret []byte, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ttl).UTC().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// parseAdminToken validates an HS256 token and returns its subject
func parseAdminToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	if claims.Subject != adminSubject {
		return "", jwt.ErrTokenInvalidSubject
	}
	return claims.Subject, nil
}
