package handlers

import (
	"context"
	"net/http"

	"exam-service/internal/selection"
	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PracticeHandler struct {
	Service *service.PracticeService
}

func NewPracticeHandler(s *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{Service: s}
}

func (h *PracticeHandler) Start(c *gin.Context) {
	var req struct {
		Subject    string `json:"subject"`
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
		Count      int    `json:"count" binding:"required,min=1"`
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
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// SubmitAnswer grades one question and returns full feedback, canonical
// answer and explanation included.
func (h *PracticeHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		Answer         string `json:"answer"`
		ElapsedSeconds int    `json:"elapsed_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	res, err := h.Service.SubmitAnswer(context.Background(), callerID(c), c.Param("id"),
		req.QuestionID, req.Answer, req.ElapsedSeconds)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PracticeHandler) UpdatePosition(c *gin.Context) {
	var req struct {
		QuestionIndex int `json:"question_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := h.Service.UpdatePosition(context.Background(), callerID(c), c.Param("id"), req.QuestionIndex); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Position updated"})
}

func (h *PracticeHandler) Resume(c *gin.Context) {
	session, answers, err := h.Service.Resume(context.Background(), callerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "answers": answers})
}

func (h *PracticeHandler) Complete(c *gin.Context) {
	score, err := h.Service.Complete(context.Background(), callerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}
