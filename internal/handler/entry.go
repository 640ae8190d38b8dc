package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/abhishek622/careerOS/internal/render"
	"github.com/abhishek622/careerOS/internal/repository"
	"github.com/abhishek622/careerOS/pkg/model"
	"github.com/abhishek622/careerOS/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListEntries returns the latest entries, newest first
// GET /api/entries
func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.EntryRepo.ListLatest(c.Request.Context(), repository.DefaultListLimit)
	if err != nil {
		h.Logger.Error("list_entries: failed to list", zap.Error(err))
		response.InternalError(c, "failed to list entries")
		return
	}

	response.List(c, entries)
}

// CreateEntry validates the body and stores a new entry
// POST /api/entries
func (h *Handler) CreateEntry(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Logger.Error("create_entry: failed to read body", zap.Error(err))
		response.InternalError(c, "failed to read request body")
		return
	}

	req, err := model.DecodeCreateEntryReq(body)
	switch {
	case errors.Is(err, model.ErrMarkdownRequired):
		response.BadRequest(c, model.ErrMarkdownRequired.Error())
		return
	case errors.Is(err, model.ErrMalformedBody):
		h.Logger.Warn("create_entry: malformed body", zap.Int("bytes", len(body)))
		response.InternalError(c, "invalid JSON body")
		return
	case err != nil:
		response.InternalError(c, "")
		return
	}

	h.createEntry(c, req.Title, req.Markdown)
}

func (h *Handler) createEntry(c *gin.Context, title, markdown string) {
	entry, err := h.EntryRepo.Create(c.Request.Context(), title, markdown)
	if err != nil {
		h.Logger.Error("create_entry: failed to create", zap.Error(err))
		response.InternalError(c, "failed to create entry")
		return
	}

	h.Logger.Info("create_entry: entry created", zap.Int64("entry_id", entry.ID))
	response.Created(c, entry)
}

// GetEntry returns an entry with its rendered HTML
// GET /api/entries/:id
func (h *Handler) GetEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid entry id")
		return
	}

	entry, err := h.EntryRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			response.NotFound(c, "entry not found")
			return
		}
		h.Logger.Error("get_entry: failed to fetch", zap.Int64("entry_id", id), zap.Error(err))
		response.InternalError(c, "failed to fetch entry")
		return
	}

	html, err := render.HTML(entry.Markdown)
	if err != nil {
		h.Logger.Error("get_entry: failed to render", zap.Int64("entry_id", id), zap.Error(err))
		response.InternalError(c, "failed to render entry")
		return
	}

	response.OK(c, model.EntryDetail{Entry: entry, HTML: html})
}
