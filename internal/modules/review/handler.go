package review

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/middleware"
	"github.com/shelfmark/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	b := rg.Group("/books", authMW)
	b.POST("/reviews", h.create)
	b.DELETE("/reviews/:id", h.remove)
	b.GET("/:id/reviews", h.listByBook)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	r, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, errBookNotFound) {
			response.NotFound(c, "book not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(r))
}

func (h *Handler) listByBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reviews, err := h.svc.ListByBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errBookNotFound) {
			response.NotFound(c, "book not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	items := make([]reviewResponse, len(reviews))
	for i := range reviews {
		items[i] = toResponse(&reviews[i])
	}
	response.OK(c, items)
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, errReviewNotFound):
			response.NotFound(c, "review not found")
		case errors.Is(err, errNotAuthor):
			response.Forbidden(c, "only the author can delete a review")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "review deleted successfully"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
