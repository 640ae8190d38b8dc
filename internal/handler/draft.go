package handler

import (
	"io"
	"net/http"

	"github.com/abhishek622/careerOS/internal/draft"
	"github.com/abhishek622/careerOS/pkg/response"
	"github.com/gin-gonic/gin"
)

// GenerateDraft always succeeds; unreadable or malformed bodies count as empty text.
// POST /api/generate-draft
func (h *Handler) GenerateDraft(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Logger.Sugar().Warnw("generate_draft: body read failed", "err", err)
		body = nil
	}

	text := draft.TextFromBody(body)
	response.JSON(c, http.StatusOK, gin.H{
		"inputPreview": draft.Preview(text),
		"draft":        draft.Generate(text),
	})
}
