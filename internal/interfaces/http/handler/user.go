package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// UserHandler handles user registration, authentication and lookup
type UserHandler struct {
	BaseHandler
	users       *identityapp.UserService
	tokens      *auth.TokenService
	requireAuth gin.HandlerFunc
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *identityapp.UserService, tokens *auth.TokenService, requireAuth gin.HandlerFunc) *UserHandler {
	return &UserHandler{
		users:       users,
		tokens:      tokens,
		requireAuth: requireAuth,
	}
}

type credentialsRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// RegisterRoutes registers user routes. Registration and authentication are
// public; listing and lookup require a token.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", middleware.ValidateRequest(credentialRules()...), h.Create)
	rg.GET("/users/auth", middleware.ValidateRequest(credentialRules()...), h.Authenticate)
	rg.GET("/users", h.requireAuth, h.Index)
	rg.GET("/users/:id", h.requireAuth, h.Show)
}

func credentialRules() []middleware.Rule {
	return []middleware.Rule{
		middleware.Body("firstName", "Please provide a valid first name with at least 5 characters", middleware.IsString(5)),
		middleware.Body("lastName", "Please provide a valid last name with at least 5 characters", middleware.IsString(5)),
		middleware.Body("password", "Please provide a strong password with a length of 8 characters at least", middleware.IsString(8)),
	}
}

// Create registers a new user and returns a signed token for it
func (h *UserHandler) Create(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), identityapp.CredentialsInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}

	h.issueToken(c, user)
}

// Authenticate verifies credentials and returns a signed token
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), identityapp.CredentialsInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}
	if user == nil {
		h.ErrorMsg(c, http.StatusUnauthorized, "Incorrect password for this user")
		return
	}

	h.issueToken(c, user)
}

// Index lists all users without credential fields
func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.users.Index(c.Request.Context())
	if err != nil {
		h.Error(c, http.StatusNotFound, err)
		return
	}
	if len(users) == 0 {
		h.ErrorMsg(c, http.StatusNotFound, "No users found")
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, dto.UserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Show returns a single user by id
func (h *UserHandler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}
	if id <= 0 {
		h.ErrorMsg(c, http.StatusUnauthorized, "Please provide non-negative id")
		return
	}

	user, err := h.users.Show(c.Request.Context(), int64(id))
	if err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

func (h *UserHandler) issueToken(c *gin.Context, user *identity.User) {
	token, err := h.tokens.Issue(auth.TokenUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		h.Error(c, http.StatusUnauthorized, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
