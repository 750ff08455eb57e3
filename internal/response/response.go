package response

import (
	"time"

	"gpu_queue/internal/models"
)

// ErrorResponse — единый формат ошибки API
type ErrorResponse struct {
	// Человекочитаемое сообщение об ошибке
	// example: Method not allowed
	Error string `json:"error"`
}

// QueueItem представляет запись очереди в ответах API.
// Временные поля — строки RFC3339 либо null.
type QueueItem struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	Username        string  `json:"username"`
	GPUName         string  `json:"gpu_name"`
	DurationMinutes int     `json:"duration_minutes"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Status          string  `json:"status"`
	Position        int     `json:"position"`
	CreatedAt       string  `json:"created_at"`
	StudentGroup    string  `json:"student_group"`
}

// QueueItemFromEntry переводит запись из базы в формат ответа.
// Пустая группа заменяется на "Без группы".
func QueueItemFromEntry(e models.QueueEntry) QueueItem {
	group := e.StudentGroup
	if group == "" {
		group = "Без группы"
	}
	return QueueItem{
		ID:              e.ID,
		UserID:          e.UserID,
		Username:        e.Username,
		GPUName:         e.GPUName,
		DurationMinutes: e.DurationMinutes,
		StartTime:       FormatTime(e.StartTime),
		EndTime:         FormatTime(e.EndTime),
		Status:          string(e.Status),
		Position:        e.Position,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
		StudentGroup:    group,
	}
}

// FormatTime форматирует время в RFC3339, nil остаётся nil.
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

type QueueListResponse struct {
	Queue []QueueItem `json:"queue"`
}

type EnqueueResponse struct {
	Success   bool   `json:"success"`
	QueueID   uint   `json:"queue_id"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
}

type StartResponse struct {
	Success   bool    `json:"success"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// UserInfo — публичные поля пользователя (без хеша пароля)
type UserInfo struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	StudentGroup string `json:"student_group"`
	CreatedAt    string `json:"created_at"`
}

func UserInfoFromModel(u models.User) UserInfo {
	return UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		StudentGroup: u.StudentGroup,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AuthResponse — ответ register/login/refresh. Помимо данных пользователя
// выдаётся пара JWT-токенов.
type AuthResponse struct {
	Success      bool     `json:"success"`
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token,omitempty"`
	RefreshToken string   `json:"refresh_token,omitempty"`
}

// QueueStats — агрегаты по статусам для админ-панели
type QueueStats struct {
	Total     int64 `json:"total"`
	Waiting   int64 `json:"waiting"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

type AdminResponse struct {
	Users      []UserInfo  `json:"users"`
	QueueStats QueueStats  `json:"queue_stats"`
	AllQueue   []QueueItem `json:"all_queue"`
}
