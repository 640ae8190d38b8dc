package handler

import (
	"io"

	"github.com/abhishek622/careerOS/internal/interview"
	"github.com/abhishek622/careerOS/pkg/response"
	"github.com/gin-gonic/gin"
)

// ListInterviewQuestions returns the fixed question set
// GET /api/interview/questions
func (h *Handler) ListInterviewQuestions(c *gin.Context) {
	response.List(c, interview.Questions())
}

// SubmitInterview formats the answers as Markdown and stores them as an entry
// POST /api/interview
func (h *Handler) SubmitInterview(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Logger.Sugar().Warnw("submit_interview: body read failed", "err", err)
	}

	answers := interview.DecodeAnswers(body)
	h.createEntry(c, answers.ResolvedTitle(), interview.ToMarkdown(answers))
}
