package book

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/pkg/pagination"
	"github.com/shelfmark/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	b := rg.Group("/books", authMW)
	b.POST("/", h.create)
	b.GET("/", h.list)
	b.GET("/:id", h.get)
	b.PUT("/:id", h.update)
	b.DELETE("/:id", h.remove)
	b.GET("/:id/summary", h.summary)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBookDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(b))
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	books, pag, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]bookResponse, len(books))
	for i := range books {
		items[i] = toResponse(&books[i])
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c, "book not found")
		return
	}
	response.OK(c, toResponse(b))
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateBookDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Request.Context(), id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c, "book not found")
		return
	}
	response.OK(c, toResponse(b))
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "book not found")
		return
	}
	response.OK(c, gin.H{"message": "book deleted successfully"})
}

func (h *Handler) summary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if s == nil {
		response.NotFound(c, "book not found")
		return
	}
	response.OK(c, s)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
