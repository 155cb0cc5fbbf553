package database

import (
	"log"
	"time"

	"sentinelrisk/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open подключается к Postgres с повторами (БД в docker-compose может
// подниматься дольше приложения) и прогоняет миграции. Хэндл возвращается
// и передаётся дальше явно — никаких пакетных глобалов.
func Open(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate прогоняет автомиграции. Вынесено отдельно, чтобы тесты могли
// мигрировать свою (in-memory) БД.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Risk{},
		&models.RiskEvaluation{},
		&models.RiskStatusHistory{},
		&models.Incident{},
	)
}
