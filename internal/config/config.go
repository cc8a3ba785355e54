package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Config — настройки справочника, передаются в движок при создании.
type Config struct {
	StorePath  string
	PageSize   int
	Backend    string
	SQLitePath string
	LogLevel   string

	// EnvFileLoaded — был ли найден и прочитан файл .env.
	EnvFileLoaded bool
}

// Load считывает .env файл (если он есть) и заполняет структуру Config
// из переменных окружения.
func Load() (*Config, error) {
	// Переменные окружения OS имеют приоритет: godotenv их не перезаписывает.
	loaded := godotenv.Load() == nil

	pageSize, err := parsePositiveInt("PHONEBOOK_PAGE_SIZE", withDefault(os.Getenv("PHONEBOOK_PAGE_SIZE"), "10"))
	if err != nil {
		return nil, err
	}

	backend := strings.ToLower(withDefault(os.Getenv("PHONEBOOK_BACKEND"), BackendCSV))
	if backend != BackendCSV && backend != BackendSQLite {
		return nil, fmt.Errorf("переменная PHONEBOOK_BACKEND: неизвестное хранилище %q", backend)
	}

	return &Config{
		StorePath:     ResolvePath(withDefault(os.Getenv("PHONEBOOK_FILE"), "phonebook.csv")),
		PageSize:      pageSize,
		Backend:       backend,
		SQLitePath:    ResolvePath(withDefault(os.Getenv("PHONEBOOK_SQLITE_PATH"), "phonebook.db")),
		LogLevel:      withDefault(os.Getenv("PHONEBOOK_LOG_LEVEL"), "warn"),
		EnvFileLoaded: loaded,
	}, nil
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parsePositiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("переменная %s должна быть положительным числом: %q", name, value)
	}
	return n, nil
}

// ResolvePath делает относительный путь абсолютным относительно рабочей директории.
func ResolvePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if filepath.IsAbs(p) {
		return p
	}

	if cwd, err := os.Getwd(); err == nil {
		return filepath.Clean(filepath.Join(cwd, p))
	}

	return p
}
