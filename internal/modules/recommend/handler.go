package recommend

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/middleware"
	"github.com/shelfmark/core/internal/pkg/llm"
	"github.com/shelfmark/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/recommendations", authMW, h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	rec, err := h.svc.Recommend(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, errEmptyCatalog):
			response.NotFound(c, "no books found")
		case errors.Is(err, llm.ErrUnavailable):
			response.ServiceUnavailable(c, "recommendation service unavailable")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, []Recommendation{rec})
}
