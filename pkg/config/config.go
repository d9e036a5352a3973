package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shouni/go-shop-kit/pkg/provinces"
)

// Config はCLIとAPIクライアントの設定です。
type Config struct {
	ShopAPIBaseURL  string
	ProvincesAPIURL string
	HTTPTimeout     time.Duration
	LogLevel        slog.Level
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadConfig は .env（存在すれば）と環境変数から設定を読み込みます。
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env がない環境も正常
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env の読み込みに失敗しました: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("HTTP_TIMEOUT が不正です: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT は正の値である必要があります: %s", timeout)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL が不正です: %w", err)
	}

	return &Config{
		ShopAPIBaseURL:  getEnv("SHOP_API_BASE_URL", ""),
		ProvincesAPIURL: getEnv("PROVINCES_API_URL", provinces.DefaultBaseURL),
		HTTPTimeout:     timeout,
		LogLevel:        level,
	}, nil
}
