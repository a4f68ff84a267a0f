package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "weiyue/internal/application/user/dto"
	"weiyue/internal/application/user/usecases"
	"weiyue/internal/shared/logger"
	"weiyue/internal/shared/utils"
)

// UserService is the subset of the user application service used over HTTP.
type UserService interface {
	Login(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*userdto.LoginResponse, error)
	Register(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*userdto.UserResponse, error)
	Get(ctx context.Context, userID string) (*userdto.UserResponse, error)
}

type AuthHandler struct {
	userService UserService
	logger      logger.Interface
}

func NewAuthHandler(userService UserService, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,max=50"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	RealName   string `json:"real_name" binding:"max=50"`
	Department string `json:"department" binding:"max=100"`
	Role       string `json:"role" binding:"max=50"`
	Phone      string `json:"phone" binding:"max=20"`
	Email      string `json:"email" binding:"omitempty,email,max=100"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.userService.Login(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.userService.Register(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Username:   req.Username,
		Password:   req.Password,
		RealName:   req.RealName,
		Department: req.Department,
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "user registered successfully")
}

// GetUser handles GET /api/users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	result, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
