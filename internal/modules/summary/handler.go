package summary

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelfmark/core/internal/modules/extract"
	"github.com/shelfmark/core/internal/pkg/llm"
	"github.com/shelfmark/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/generate-summary", authMW, h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if !isPDF(file) {
		response.BadRequest(c, "please upload a PDF file")
		return
	}

	// Spool the upload to disk; the PDF reader needs a seekable file.
	path := filepath.Join(os.TempDir(), uuid.NewString()+".pdf")
	if err := c.SaveUploadedFile(file, path); err != nil {
		response.InternalError(c, err)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			h.logger.Warn("failed to remove uploaded file",
				zap.String("path", path), zap.Error(err))
		}
	}()

	result, err := h.svc.GenerateFromFile(c.Request.Context(), path)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnreadableDocument):
			response.UnprocessableEntity(c, "could not extract any text from the document")
		case errors.Is(err, llm.ErrUnavailable):
			response.ServiceUnavailable(c, "summary service unavailable")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"final_summary": result})
}

func isPDF(file *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return true
	}
	return file.Header.Get("Content-Type") == "application/pdf"
}

// MaxUploadBytes converts the configured megabyte limit for gin's
// MaxMultipartMemory and the body size middleware.
func MaxUploadBytes(mb int) int64 {
	if mb <= 0 {
		mb = 25
	}
	return int64(mb) << 20
}
