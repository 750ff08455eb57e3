package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	_ "gpu_queue/docs"
	"gpu_queue/internal/auth"
	"gpu_queue/internal/handlers"
	"gpu_queue/internal/models"
	"gpu_queue/internal/response"
	"gpu_queue/internal/storage"
	"gpu_queue/internal/tasks"
	"gpu_queue/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Очередь на GPU
// @Description				Онлайн-очередь за эксклюзивным доступом к видеокартам лаборатории
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.QueueEntry{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	tasks.InitScheduler()

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-User-Id", "X-User-Role"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Контракт API: на неподдерживаемый метод отвечаем 405, а не 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.ErrorResponse{Error: "Method not allowed"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth", handlers.AuthHandler)

	queueGroup := r.Group("/queue")
	{
		queueGroup.GET("", handlers.GetQueueHandler)
		queueGroup.POST("", handlers.EnqueueHandler)
		queueGroup.PUT("", handlers.UpdateQueueHandler)
		queueGroup.GET("/ws", ws.QueueWebSocketHandler)
	}

	r.GET("/admin", auth.AdminOnly(), handlers.AdminHandler)

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
