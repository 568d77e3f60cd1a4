package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoshD94/triviargh/internal/service"
)

type QuestionController struct {
	Questions *service.QuestionService
}

// createQuestionRequest is shared by /questions and /rooms/:code POST;
// RoomID is only honored on the former.
type createQuestionRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
	RoomID   *uint    `json:"roomId"`
}

type deleteQuestionRequest struct {
	ID *uint `json:"id"`
}

func (qc *QuestionController) ListQuestions(c *gin.Context) {
	questions, err := qc.Questions.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	question, err := qc.Questions.Create(service.CreateInput{
		Question: req.Question,
		Options:  req.Options,
		Answer:   req.Answer,
		RoomID:   req.RoomID,
	})
	if err != nil {
		respondQuestionError(c, "Failed to create question", err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	var req deleteQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	question, err := qc.Questions.DeleteByID(*req.ID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, question)
}

// respondQuestionError maps service errors from the question-creation
// paths: validation to 400, everything else to 500 with the underlying
// message wrapped.
func respondQuestionError(c *gin.Context, prefix string, err error) {
	var valErr *service.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": prefix + ": " + err.Error()})
}
