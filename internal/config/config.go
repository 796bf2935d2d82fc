// README: Config loader with env defaults for HTTP, model artifacts, and engine settings.
package config

import (
	"os"
	"strconv"
)

type EngineConfig struct {
	ReferenceYear   int
	JPYToBDT        float64
	BDTToUSDDivisor float64
	PlatformFeeRate float64
	DefaultWinProb  float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Models struct {
		Dir string
		// RemoteURL, when set, serves predictions from an external model
		// service instead of local artifacts. Encoders still load from Dir.
		RemoteURL string
	}
	Engine EngineConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("PULSE_HTTP_ADDR", ":8080")
	cfg.Models.Dir = envOrDefault("PULSE_MODEL_DIR", "models")
	cfg.Models.RemoteURL = envOrDefault("PULSE_MODEL_SERVICE_URL", "")
	cfg.Engine.ReferenceYear = envOrDefaultInt("PULSE_REFERENCE_YEAR", 2024)
	cfg.Engine.JPYToBDT = envOrDefaultFloat("PULSE_JPY_TO_BDT", 0.72)
	cfg.Engine.BDTToUSDDivisor = envOrDefaultFloat("PULSE_BDT_TO_USD_DIVISOR", 110)
	cfg.Engine.PlatformFeeRate = envOrDefaultFloat("PULSE_PLATFORM_FEE_RATE", 0.02)
	cfg.Engine.DefaultWinProb = envOrDefaultFloat("PULSE_DEFAULT_WIN_PROB", 0.7)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
