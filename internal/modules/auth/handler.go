package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, errEmailRegistered) {
			response.BadRequest(c, "email already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, userResponse{Email: u.Email})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tok, err := h.svc.Login(c.Request.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.BadRequest(c, "invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{AccessToken: tok, TokenType: "bearer"})
}
