package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/middleware"
	"github.com/shelfmark/core/internal/modules/auth"
	"github.com/shelfmark/core/internal/modules/book"
	"github.com/shelfmark/core/internal/modules/extract"
	"github.com/shelfmark/core/internal/modules/recommend"
	"github.com/shelfmark/core/internal/modules/review"
	"github.com/shelfmark/core/internal/modules/summarize"
	"github.com/shelfmark/core/internal/modules/summary"
	"github.com/shelfmark/core/internal/pkg/llm"
	"github.com/shelfmark/core/internal/pkg/response"
)

func (a *App) registerRoutes() error {
	r := a.router
	db := a.db
	authMW := middleware.Auth(a.tokens)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	root := r.Group("")

	// Register and login are the only routes reachable without a token, so
	// they are the only ones behind the per-IP rate limit.
	public := root.Group("", middleware.RateLimit(a.rc.Raw()))
	auth.NewHandler(auth.NewService(db, a.tokens)).RegisterRoutes(public)

	gen, err := llm.New(a.cfg.AI)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}

	book.NewHandler(book.NewService(db)).RegisterRoutes(root, authMW)
	review.NewHandler(review.NewService(db)).RegisterRoutes(root, authMW)
	recommend.NewHandler(recommend.NewService(db, gen, a.logger)).RegisterRoutes(root, authMW)

	extractor := extract.New(a.logger)
	summarizer := summarize.New(gen, a.cfg.Summarize.ChunkLimit, a.logger)
	summary.NewHandler(summary.NewService(extractor, summarizer), a.logger).RegisterRoutes(root, authMW)

	return nil
}
