package handlers

import (
	"context"
	"net/http"

	"exam-service/internal/selection"
	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

// Start creates a proctored attempt with a frozen question list.
func (h *AttemptHandler) Start(c *gin.Context) {
	var req struct {
		Subject             string `json:"subject"`
		Topic               string `json:"topic"`
		Difficulty          string `json:"difficulty"`
		Count               int    `json:"count" binding:"required,min=1"`
		TimeLimitSeconds    *int   `json:"time_limit_seconds"`
		SectionLimitSeconds *int   `json:"section_limit_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	res, err := h.Service.Start(context.Background(), callerID(c), selection.Filter{
		Subject:    req.Subject,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Count:      req.Count,
	}, req.TimeLimitSeconds, req.SectionLimitSeconds)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// SubmitAnswer grades one question. The response carries correctness only.
func (h *AttemptHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		Answer         string `json:"answer"`
		ElapsedSeconds int    `json:"elapsed_seconds"`
		SectionIndex   *int   `json:"section_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	res, err := h.Service.SubmitAnswer(context.Background(), callerID(c), c.Param("id"),
		req.QuestionID, req.Answer, req.ElapsedSeconds, req.SectionIndex)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AdvanceSection locks the current section and opens the next one.
func (h *AttemptHandler) AdvanceSection(c *gin.Context) {
	var req struct {
		NextSectionLimitSeconds *int `json:"next_section_limit_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	res, err := h.Service.AdvanceSection(context.Background(), callerID(c), c.Param("id"), req.NextSectionLimitSeconds)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdatePosition stores the client's bookmark for later resume.
func (h *AttemptHandler) UpdatePosition(c *gin.Context) {
	var req struct {
		QuestionIndex int  `json:"question_index"`
		SectionIndex  *int `json:"section_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := h.Service.UpdatePosition(context.Background(), callerID(c), c.Param("id"),
		req.QuestionIndex, req.SectionIndex); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Position updated"})
}

// Resume returns everything a reloaded client needs to rebuild its state.
func (h *AttemptHandler) Resume(c *gin.Context) {
	res, err := h.Service.Resume(context.Background(), callerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Sync is the lightweight poll for server time and remaining budgets.
func (h *AttemptHandler) Sync(c *gin.Context) {
	res, err := h.Service.Sync(context.Background(), callerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Complete finalizes the attempt and returns the score breakdown.
func (h *AttemptHandler) Complete(c *gin.Context) {
	breakdown, err := h.Service.Complete(context.Background(), callerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
