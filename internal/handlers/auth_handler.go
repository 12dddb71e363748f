package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/config"
	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/validators"
)

// UserStore is the part of the user repository auth needs.
type UserStore interface {
	Create(ctx context.Context, row *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	users    UserStore
	config   *config.Config
	resolver validators.Resolver
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewAuthHandler(
	users UserStore,
	cfg *config.Config,
	resolver validators.Resolver,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		config:   cfg,
		resolver: resolver,
		audit:    audit,
		log:      log,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config.CheckEmailDomain &&
		!validators.EmailDomainResolves(c.Request.Context(), h.resolver, email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not appear to be valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error().Err(err).Msg("password hashing failed")
		httperr.Internal(c, "failed_to_hash_password", "Internal server error.")
		return
	}

	user, err := h.users.Create(c.Request.Context(), &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		var ce *resource.ConstraintError
		if errors.As(err, &ce) && ce.Kind == resource.ConstraintUnique {
			httperr.Conflict(c, "email_already_registered", "This e-mail is already registered.")
			return
		}
		httperr.FromError(c, "user", err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Internal server error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_signed_up",
		Entity:   "user",
		EntityID: user.ID,
	})

	c.JSON(http.StatusCreated, AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, resource.ErrNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return
	}
	if err != nil {
		httperr.FromError(c, "user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(h.config.JWTTTL()).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
