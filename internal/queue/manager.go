package queue

import (
	"errors"
	"time"

	"gpu_queue/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ошибки ядра очереди; в HTTP-статусы их переводят хендлеры.
var (
	ErrNotFound          = errors.New("запись в очереди не найдена")
	ErrInvalidTransition = errors.New("недопустимый переход статуса")
)

// queueLockKey — ключ advisory-блокировки Postgres, сериализующей
// подсчёт позиции и вставку при конкурентных Enqueue.
const queueLockKey = 4090

// Manager отвечает за добавление, порядок и жизненный цикл записей очереди.
type Manager struct {
	DB *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{DB: db}
}

// ListActive возвращает все записи со статусом waiting или active,
// отсортированные по позиции (при равенстве — по времени создания).
func (m *Manager) ListActive() ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	err := m.DB.
		Where("status IN ?", []models.QueueStatus{models.StatusWaiting, models.StatusActive}).
		Order("position ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Enqueue добавляет запись со статусом waiting и позицией
// count(waiting+active)+1. Подсчёт и вставка идут в одной транзакции под
// advisory-блокировкой, поэтому параллельные Enqueue не могут получить
// одинаковую позицию.
func (m *Manager) Enqueue(userID uint, username, gpuName string, durationMinutes int, studentGroup string) (*models.QueueEntry, error) {
	entry := models.QueueEntry{
		UserID:          userID,
		Username:        username,
		GPUName:         gpuName,
		DurationMinutes: durationMinutes,
		Status:          models.StatusWaiting,
		StudentGroup:    studentGroup,
	}

	err := m.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", queueLockKey).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.QueueEntry{}).
			Where("status IN ?", []models.QueueStatus{models.StatusWaiting, models.StatusActive}).
			Count(&count).Error; err != nil {
			return err
		}

		entry.Position = int(count) + 1
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Start переводит запись waiting -> active и проставляет start/end время.
// Длительность берётся из аргумента, а не из сохранённого запроса: решает
// значение, переданное в момент активации.
func (m *Manager) Start(queueID uint, durationMinutes int) (*models.QueueEntry, error) {
	var entry models.QueueEntry
	err := m.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, queueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if entry.Status != models.StatusWaiting {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		end := now.Add(time.Duration(durationMinutes) * time.Minute)
		entry.Status = models.StatusActive
		entry.StartTime = &now
		entry.EndTime = &end
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Complete переводит запись в completed. Завершить можно и waiting-запись
// (активацию разрешено пропустить), повторное завершение — ошибка.
// Позиции остальных записей не пересчитываются: активный список
// фильтруется по статусу, непрерывность позиций гарантируется на момент
// вставки.
func (m *Manager) Complete(queueID uint) error {
	return m.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, queueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if entry.Status == models.StatusCompleted {
			return ErrInvalidTransition
		}

		entry.Status = models.StatusCompleted
		return tx.Save(&entry).Error
	})
}

// ExpiredActive возвращает активные записи, у которых время сеанса уже
// вышло (end_time в прошлом). Используется фоновой задачей автозавершения.
func (m *Manager) ExpiredActive(now time.Time) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	err := m.DB.
		Where("status = ? AND end_time < ?", models.StatusActive, now).
		Find(&entries).Error
	return entries, err
}
