package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JoshD94/triviargh/internal/genai"
	"github.com/JoshD94/triviargh/internal/service"
)

type GeminiController struct {
	Rooms     *service.RoomService
	Questions *service.QuestionService
	Generator *genai.Client
}

type generateQuestionRequest struct {
	RoomCode string `json:"roomCode"`
	Theme    string `json:"theme"`
}

// GenerateQuestion asks the model for a question and persists it to the
// room. Generation itself never fails (the adapter degrades to a
// fallback), so the only error paths left are validation and storage.
func (gc *GeminiController) GenerateQuestion(c *gin.Context) {
	var req generateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	theme := strings.TrimSpace(req.Theme)
	if theme != "" && (strings.Contains(theme, " ") || len(theme) > 15) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must be a single word of 15 characters or less"})
		return
	}

	room, err := gc.Rooms.Get(req.RoomCode)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question: " + err.Error()})
		return
	}

	generated := gc.Generator.Generate(c.Request.Context(), theme)
	question, err := gc.Questions.Create(service.CreateInput{
		Question: generated.Question,
		Options:  generated.Options,
		Answer:   generated.Answer,
		RoomID:   &room.ID,
	})
	if err != nil {
		respondQuestionError(c, "Failed to create question", err)
		return
	}
	c.JSON(http.StatusCreated, question)
}
