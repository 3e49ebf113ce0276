package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Database : подключение к Postgres. Репозитории и сервисы принимают его как sqlx.ExtContext
type Database struct {
	*sqlx.DB
}

func NewDatabaseConnection(dbDriver string, cfg *DatabaseConfig) (*Database, error) {
	database, err := sqlx.Open(dbDriver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime != "" {
		lifetime, err := time.ParseDuration(cfg.ConnMaxLifetime)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("некорректный conn_max_lifetime: %w", err)
		}
		database.SetConnMaxLifetime(lifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("ошибка пинга БД: %w", err)
	}

	log.Println("Подключение к БД успешно выполнено")
	return &Database{database}, nil
}

func (db *Database) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}
	return nil
}
