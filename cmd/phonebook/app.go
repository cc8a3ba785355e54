package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Etozheigor/phonebook/internal/config"
	"github.com/Etozheigor/phonebook/internal/db"
	"github.com/Etozheigor/phonebook/internal/logging"
	"github.com/Etozheigor/phonebook/internal/service"
	"github.com/Etozheigor/phonebook/internal/storage"
)

// app — зависимости одного запуска CLI.
type app struct {
	stderr io.Writer

	// Глобальные флаги
	file    string
	verbose bool

	cfg        *config.Config
	logger     *zap.Logger
	book       *service.Phonebook
	closeStore func() error
}

// setup загружает конфигурацию, создаёт логгер и открывает хранилище.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}
	if a.file != "" {
		if cfg.Backend == config.BackendSQLite {
			cfg.SQLitePath = config.ResolvePath(a.file)
		} else {
			cfg.StorePath = config.ResolvePath(a.file)
		}
	}
	a.cfg = cfg

	logger, err := logging.New(a.stderr, cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	if !cfg.EnvFileLoaded {
		logger.Debug("файл .env не найден, используются переменные окружения")
	}

	var store service.Store
	switch cfg.Backend {
	case config.BackendSQLite:
		sqliteStore, err := db.Open(cfg.SQLitePath, logger)
		if err != nil {
			return err
		}
		a.closeStore = sqliteStore.Close
		store = sqliteStore
		logger.Debug("хранилище SQLite", zap.String("path", cfg.SQLitePath))
	default:
		store = storage.NewFileStore(cfg.StorePath, logger)
		logger.Debug("хранилище в файле", zap.String("path", cfg.StorePath))
	}

	a.book = service.New(store, service.Options{PageSize: cfg.PageSize, Logger: logger})
	logger.Debug("команда", zap.String("name", cmd.Name()))
	return nil
}

func (a *app) close() {
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil && a.logger != nil {
			a.logger.Warn("ошибка закрытия хранилища", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
