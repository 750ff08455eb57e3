package handlers

import (
	"net/http"

	"gpu_queue/internal/models"
	"gpu_queue/internal/response"
	"gpu_queue/internal/storage"

	"github.com/gin-gonic/gin"
)

// AdminHandler обрабатывает запрос данных админ-панели
// @Summary		Данные админ-панели
// @Description	Список пользователей, агрегаты по статусам и последние 50 записей очереди
// @Tags			admin
// @Produce		json
// @Param			X-User-Role	header		string					true	"Роль пользователя, требуется admin"
// @Success		200			{object}	response.AdminResponse	"Сводка по пользователям и очереди"
// @Failure		403			{object}	response.ErrorResponse	"Недостаточно прав"
// @Failure		500			{object}	response.ErrorResponse	"Ошибка сервера"
// @Router			/admin [get]
func AdminHandler(c *gin.Context) {
	var users []models.User
	if err := storage.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load users"})
		return
	}

	userInfos := make([]response.UserInfo, 0, len(users))
	for _, u := range users {
		userInfos = append(userInfos, response.UserInfoFromModel(u))
	}

	var stats response.QueueStats
	row := storage.DB.Model(&models.QueueEntry{}).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN status = 'waiting' THEN 1 END) AS waiting,
			COUNT(CASE WHEN status = 'active' THEN 1 END) AS active,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed`).
		Row()
	if err := row.Scan(&stats.Total, &stats.Waiting, &stats.Active, &stats.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load queue stats"})
		return
	}

	// Последние 50 записей независимо от статуса, новые первыми
	var entries []models.QueueEntry
	if err := storage.DB.Order("created_at DESC").Limit(50).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load queue history"})
		return
	}

	allQueue := make([]response.QueueItem, 0, len(entries))
	for _, entry := range entries {
		allQueue = append(allQueue, response.QueueItemFromEntry(entry))
	}

	c.JSON(http.StatusOK, response.AdminResponse{
		Users:      userInfos,
		QueueStats: stats,
		AllQueue:   allQueue,
	})
}
