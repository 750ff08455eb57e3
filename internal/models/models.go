package models

import (
	"time"

	"gorm.io/gorm"
)

// QueueStatus — статус записи в очереди. Переходы только вперёд:
// waiting -> active -> completed, обратных переходов нет.
type QueueStatus string

const (
	StatusWaiting   QueueStatus = "waiting"
	StatusActive    QueueStatus = "active"
	StatusCompleted QueueStatus = "completed"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"` // Роль "admin" открывает доступ к отчётам
	StudentGroup string `gorm:"not null"`
}

type QueueEntry struct {
	gorm.Model
	UserID          uint        `gorm:"index;not null"`
	Username        string      `gorm:"not null"`
	GPUName         string      `gorm:"not null"` // Запрошенная видеокарта
	DurationMinutes int         `gorm:"not null"` // Запрошенная длительность в минутах
	StartTime       *time.Time  // Заполняется при активации, до этого nil
	EndTime         *time.Time  // StartTime + длительность, переданная при активации
	Status          QueueStatus `gorm:"index;not null;default:waiting"`
	Position        int         `gorm:"index;not null"` // Позиция среди незавершённых записей
	StudentGroup    string
}
