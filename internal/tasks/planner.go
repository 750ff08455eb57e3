package tasks

import (
	"log"
	"time"

	"gpu_queue/internal/queue"
	"gpu_queue/internal/storage"

	"github.com/robfig/cron/v3"
)

// CompleteExpiredEntries завершает активные записи, у которых вышло время
// сеанса (end_time в прошлом). Пользователь, не освободивший видеокарту
// сам, освобождает её автоматически.
func CompleteExpiredEntries() {
	manager := queue.NewManager(storage.DB)

	expired, err := manager.ExpiredActive(time.Now().UTC())
	if err != nil {
		log.Println("Ошибка при поиске просроченных записей:", err)
		return
	}

	for _, entry := range expired {
		if err := manager.Complete(entry.ID); err != nil {
			// Запись могли завершить вручную между выборкой и апдейтом
			log.Printf("Не удалось автозавершить запись %d: %v\n", entry.ID, err)
			continue
		}
		log.Printf("Запись %d (%s, %s) автозавершена по истечении времени.\n", entry.ID, entry.Username, entry.GPUName)
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Проверка просроченных сеансов каждую минуту.
	_, err := c.AddFunc("0 * * * * *", CompleteExpiredEntries)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CompleteExpiredEntries:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
