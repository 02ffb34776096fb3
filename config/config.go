package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"care-label-reader/internal/domain/entity"
)

const defaultTemplatesDir = "templates"

type Config struct {
	TelegramToken string
	TemplatesDir  string
	Pipeline      entity.PipelineConfig
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		TemplatesDir:  os.Getenv("LABEL_TEMPLATES_DIR"),
		Pipeline:      entity.DefaultPipelineConfig(),
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = defaultTemplatesDir
	}

	p := &cfg.Pipeline
	if err := envInt("LABEL_DEBUG", &p.Debug); err != nil {
		return nil, err
	}
	if err := envInt("LABEL_MAX_SIDE", &p.MaxSide); err != nil {
		return nil, err
	}
	if v := os.Getenv("LABEL_CONTOUR"); v != "" {
		p.LabelContour = entity.LabelContour(v)
	}
	if err := envFloat("LABEL_BASE_ACCEPT", &p.BaseAccept); err != nil {
		return nil, err
	}
	if err := envFloat("LABEL_INNER_ACCEPT", &p.InnerAccept); err != nil {
		return nil, err
	}
	if err := envFloat("LABEL_SYMBOL_SCALE", &p.SymbolScale); err != nil {
		return nil, err
	}
	if err := envFloat("LABEL_CROP_SCALE", &p.CropScale); err != nil {
		return nil, err
	}
	if err := envBool("LABEL_DECODE_DETAILS", &p.DecodeDetails); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}
	return cfg, nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
