package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JoshD94/triviargh/internal/service"
)

type RoomController struct {
	Rooms     *service.RoomService
	Questions *service.QuestionService
}

// ListRoomQuestions returns the room's questions, provisioning an empty
// room on the first visit to an unseen code.
func (rc *RoomController) ListRoomQuestions(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	questions, err := rc.Questions.ListForRoom(code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (rc *RoomController) CreateRoomQuestion(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	question, err := rc.Questions.CreateForRoom(code, service.CreateInput{
		Question: req.Question,
		Options:  req.Options,
		Answer:   req.Answer,
	})
	if err != nil {
		respondQuestionError(c, "Failed to create question", err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if err := rc.Rooms.Delete(code); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room and questions deleted"})
}
