package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/repository"
	"miniattic-api/internal/response"
	"miniattic-api/internal/service"
)

type UserController struct {
	Auth   *service.AuthService
	logger *zap.Logger
}

func NewUserController(auth *service.AuthService, logger *zap.Logger) *UserController {
	return &UserController{Auth: auth, logger: logger}
}

// POST /users
func (ctl *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	err := ctl.Auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Account:  req.Account,
		Password: req.Password,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		response.Fail(c, http.StatusBadRequest, response.MsgAccountTaken)
		return
	}
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}
	response.OK(c, response.MsgRegistered, nil)
}

// POST /login
func (ctl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := ctl.Auth.Login(c.Request.Context(), req.Account, req.Password)
	if err != nil {
		response.Error(c, ctl.logger, err)
		return
	}

	if res.Role == service.RoleCustomer {
		c.JSON(http.StatusOK, dto.CustomerLoginResponse{
			Success: true,
			Message: response.MsgLoginOK,
			Account: res.User.Account,
			Name:    res.User.Name,
			Token:   res.Token,
		})
		return
	}

	c.JSON(http.StatusOK, dto.StaffLoginResponse{
		Success: true,
		Message: response.MsgLoginOK,
		User:    res.User.Account,
		Access:  res.Role.String(),
		Token:   res.Token,
	})
}

// DELETE /login - el token es stateless, sólo se despide
func (ctl *UserController) Logout(c *gin.Context) {
	response.OK(c, response.MsgLogout, nil)
}
