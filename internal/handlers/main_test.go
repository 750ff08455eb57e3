package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"

	"gpu_queue/internal/auth"
	"gpu_queue/internal/models"
	"gpu_queue/internal/response"
	"gpu_queue/internal/storage"
	"gpu_queue/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var hubOnce sync.Once

func setupTestServer() *httptest.Server {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load("../../.env")
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectTestingDatabase()
	storage.DB.Exec("TRUNCATE TABLE users, queue_entries RESTART IDENTITY CASCADE;")

	if err := storage.DB.AutoMigrate(&models.User{}, &models.QueueEntry{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()
	storage.RedisClient.Del(ctx, queueCacheKey)

	hubOnce.Do(func() {
		go ws.HubInstance.Run()
	})

	r := gin.Default()

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.ErrorResponse{Error: "Method not allowed"})
	})

	r.POST("/auth", AuthHandler)

	queueGroup := r.Group("/queue")
	{
		queueGroup.GET("", GetQueueHandler)
		queueGroup.POST("", EnqueueHandler)
		queueGroup.PUT("", UpdateQueueHandler)
		queueGroup.GET("/ws", ws.QueueWebSocketHandler)
	}

	r.GET("/admin", auth.AdminOnly(), AdminHandler)

	return httptest.NewServer(r)
}
