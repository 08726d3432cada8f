package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"pong/shared"
)

const (
	WindowTitle = "Pong"
	FieldWidth  = 800
	FieldHeight = 600
	TargetFPS   = 60
)

// Tuning holds the fixed entity constants.
type Tuning struct {
	BallSpeed    float64
	BallSize     float64
	PaddleSpeed  float64
	PaddleWidth  float64
	PaddleHeight float64
}

type Config struct {
	Title  string
	Field  shared.Field
	FPS    uint32
	Tuning Tuning

	// Display
	RenderScaleQuality string

	// Overlay
	ShowFPS  bool
	FontPath string
	FontSize int

	Debug bool
}

// Default returns the fixed game configuration with no environment applied.
func Default() *Config {
	return &Config{
		Title: WindowTitle,
		Field: shared.Field{Width: FieldWidth, Height: FieldHeight},
		FPS:   TargetFPS,
		Tuning: Tuning{
			BallSpeed:    3,
			BallSize:     15,
			PaddleSpeed:  5,
			PaddleWidth:  15,
			PaddleHeight: 80,
		},
		RenderScaleQuality: "linear",
		FontPath:           "arial.ttf",
		FontSize:           16,
	}
}

// Load applies .env (if present) and environment overrides to Default.
// Only display and overlay settings are overridable.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := Default()
	cfg.RenderScaleQuality = getEnv("PONG_RENDER_SCALE_QUALITY", cfg.RenderScaleQuality)
	cfg.ShowFPS = getEnvBool("PONG_SHOW_FPS", cfg.ShowFPS)
	cfg.FontPath = getEnv("PONG_FONT_PATH", cfg.FontPath)
	cfg.FontSize = getEnvInt("PONG_FONT_SIZE", cfg.FontSize)
	cfg.Debug = getEnvBool("PONG_DEBUG", cfg.Debug)
	if cfg.FontSize <= 0 {
		cfg.FontSize = Default().FontSize
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
