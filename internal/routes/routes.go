package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/JoshD94/triviargh/internal/controllers"
	"github.com/JoshD94/triviargh/internal/genai"
	"github.com/JoshD94/triviargh/internal/service"
)

func Register(r *gin.Engine, db *gorm.DB, generator *genai.Client) {
	rooms := service.NewRoomService(db)
	questions := service.NewQuestionService(db, rooms)

	questionCtrl := &controllers.QuestionController{Questions: questions}
	roomCtrl := &controllers.RoomController{Rooms: rooms, Questions: questions}
	geminiCtrl := &controllers.GeminiController{Rooms: rooms, Questions: questions, Generator: generator}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Legacy global question pool
	r.GET("/questions", questionCtrl.ListQuestions)
	r.POST("/questions", questionCtrl.CreateQuestion)
	r.DELETE("/questions", questionCtrl.DeleteQuestion)

	// Room-scoped questions; rooms are provisioned on first reference
	r.GET("/rooms/:code", roomCtrl.ListRoomQuestions)
	r.POST("/rooms/:code", roomCtrl.CreateRoomQuestion)
	r.DELETE("/rooms/:code", roomCtrl.DeleteRoom)

	// AI question generation
	r.POST("/gemini", geminiCtrl.GenerateQuestion)
}
