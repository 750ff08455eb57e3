package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gpu_queue/internal/queue"
	"gpu_queue/internal/response"
	"gpu_queue/internal/storage"
	"gpu_queue/internal/ws"

	"github.com/gin-gonic/gin"
)

var ctx = context.Background()

// Кэш списка очереди: ключ в Redis, короткий TTL, сброс при любой мутации.
const (
	queueCacheKey = "queue_active"
	queueCacheTTL = 5 * time.Second
)

type EnqueueRequest struct {
	UserID          uint   `json:"user_id" binding:"required"`
	Username        string `json:"username" binding:"required"`
	GPUName         string `json:"gpu_name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	StudentGroup    string `json:"student_group"`
}

type UpdateQueueRequest struct {
	QueueID         uint   `json:"queue_id" binding:"required"`
	Action          string `json:"action" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

// GetQueueHandler обрабатывает запрос на получение активной очереди
// @Summary		Получение очереди
// @Description	Возвращает записи со статусом waiting/active по возрастанию позиции, результат кэшируется в Redis
// @Tags			queue
// @Produce		json
// @Success		200	{object}	response.QueueListResponse	"Текущая очередь"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера"
// @Router			/queue [get]
func GetQueueHandler(c *gin.Context) {
	if storage.RedisClient != nil {
		cached, err := storage.RedisClient.Get(ctx, queueCacheKey).Result()
		if err == nil && cached != "" {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	entries, err := queue.NewManager(storage.DB).ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load queue"})
		return
	}

	items := make([]response.QueueItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, response.QueueItemFromEntry(entry))
	}
	resp := response.QueueListResponse{Queue: items}

	if storage.RedisClient != nil {
		if body, err := json.Marshal(resp); err == nil {
			storage.RedisClient.Set(ctx, queueCacheKey, string(body), queueCacheTTL)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// EnqueueHandler обрабатывает запрос на вступление в очередь
// @Summary		Вступление в очередь
// @Description	Добавляет запись со статусом waiting и следующей позицией; подсчёт позиции и вставка атомарны
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			entry	body		EnqueueRequest				true	"Данные заявки"
// @Success		200		{object}	response.EnqueueResponse	"Запись добавлена"
// @Failure		400		{object}	response.ErrorResponse		"Ошибка валидации"
// @Failure		500		{object}	response.ErrorResponse		"Ошибка сервера"
// @Router			/queue [post]
func EnqueueHandler(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "user_id, username and gpu_name required"})
		return
	}

	// Значения по умолчанию применяет вызывающая сторона: ядро очереди
	// сохраняет то, что ему передали.
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 30
	}
	if req.StudentGroup == "" {
		req.StudentGroup = "Группа 1"
	}

	entry, err := queue.NewManager(storage.DB).Enqueue(req.UserID, req.Username, req.GPUName, req.DurationMinutes, req.StudentGroup)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to join queue"})
		return
	}

	invalidateQueueCache()
	ws.HubInstance.Broadcast(ws.Event{
		EventType: "entry_added",
		Data: map[string]interface{}{
			"queue_id": entry.ID,
			"user_id":  entry.UserID,
			"position": entry.Position,
		},
	})

	c.JSON(http.StatusOK, response.EnqueueResponse{
		Success:   true,
		QueueID:   entry.ID,
		Position:  entry.Position,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// UpdateQueueHandler обрабатывает смену статуса записи (start/complete)
// @Summary		Смена статуса записи
// @Description	action=start переводит запись waiting -> active и проставляет время, action=complete завершает запись
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			update	body		UpdateQueueRequest		true	"Идентификатор записи и действие"
// @Success		200		{object}	response.StartResponse	"Статус обновлён"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации или неизвестное действие"
// @Failure		404		{object}	response.ErrorResponse	"Запись не найдена"
// @Failure		409		{object}	response.ErrorResponse	"Недопустимый переход статуса"
// @Router			/queue [put]
func UpdateQueueHandler(c *gin.Context) {
	var req UpdateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "queue_id and action required"})
		return
	}

	manager := queue.NewManager(storage.DB)

	switch req.Action {
	case "start":
		if req.DurationMinutes <= 0 {
			req.DurationMinutes = 30
		}
		entry, err := manager.Start(req.QueueID, req.DurationMinutes)
		if err != nil {
			respondQueueError(c, err)
			return
		}

		invalidateQueueCache()
		ws.HubInstance.Broadcast(ws.Event{
			EventType: "entry_started",
			Data: map[string]interface{}{
				"queue_id": entry.ID,
				"end_time": response.FormatTime(entry.EndTime),
			},
		})

		c.JSON(http.StatusOK, response.StartResponse{
			Success:   true,
			StartTime: response.FormatTime(entry.StartTime),
			EndTime:   response.FormatTime(entry.EndTime),
		})

	case "complete":
		if err := manager.Complete(req.QueueID); err != nil {
			respondQueueError(c, err)
			return
		}

		invalidateQueueCache()
		ws.HubInstance.Broadcast(ws.Event{
			EventType: "entry_completed",
			Data:      map[string]interface{}{"queue_id": req.QueueID},
		})

		c.JSON(http.StatusOK, response.SuccessResponse{Success: true})

	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Unknown action"})
	}
}

func respondQueueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queue.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Queue entry not found"})
	case errors.Is(err, queue.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Invalid status transition"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update queue entry"})
	}
}

func invalidateQueueCache() {
	if storage.RedisClient != nil {
		storage.RedisClient.Del(ctx, queueCacheKey)
	}
}
