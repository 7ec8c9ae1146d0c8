package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/hanksha/padel-booking-backend/user"
)

//go:generate mockgen -source=user_handler.go -destination=mocks/mock_user_service.go -package=mocks

type UserService interface {
	Register(ctx context.Context, registration user.Registration) (user.User, error)
	Login(ctx context.Context, email, password string) (user.Session, error)
	GetUsers(ctx context.Context) ([]user.User, error)
	GetUserByID(ctx context.Context, id int64) (user.User, error)
	SetUserRole(ctx context.Context, id int64, role auth.Role) error
	DeleteUser(ctx context.Context, id int64) error
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type roleBody struct {
	Role string `json:"role"`
}

// RegisterAuth mounts the public sign up and log in routes behind limit.
func (h *UserHandler) RegisterAuth(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.POST("/register", limit, h.SignUp)
	rg.POST("/login", limit, h.LogIn)
}

func (h *UserHandler) Register(rg *gin.RouterGroup, authenticate gin.HandlerFunc) {
	adminOnly := AdminOnly()
	rg.Use(authenticate)
	rg.GET("/me", h.Me)
	rg.GET("", adminOnly, h.List)
	rg.PUT("/:id/role", adminOnly, h.SetRole)
	rg.DELETE("/:id", adminOnly, h.Delete)
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var registration user.Registration

	if err := c.BindJSON(&registration); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	created, err := h.service.Register(c.Request.Context(), registration)

	if err != nil {
		respondError(c, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) LogIn(c *gin.Context) {
	var creds credentials

	if err := c.BindJSON(&creds); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	session, err := h.service.Login(c.Request.Context(), creds.Email, creds.Password)

	if err != nil {
		respondError(c, err, "failed to log in")
		return
	}

	c.IndentedJSON(http.StatusOK, session)
}

func (h *UserHandler) Me(c *gin.Context) {
	found, err := h.service.GetUserByID(c.Request.Context(), principalFrom(c).UserID)

	if err != nil {
		respondError(c, err, "failed to fetch user")
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *UserHandler) List(c *gin.Context) {
	if users, err := h.service.GetUsers(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve users",
		})
	} else {
		c.IndentedJSON(http.StatusOK, users)
	}
}

func (h *UserHandler) SetRole(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	var body roleBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if err := h.service.SetUserRole(c.Request.Context(), id, auth.Role(body.Role)); err != nil {
		respondError(c, err, "failed to change role")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "role updated"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete user")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "user deleted"})
}
