package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Simulator SimulatorConfig
	Observ    ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// SimulatorConfig holds the initial fault-injection knobs. All of them stay
// adjustable at runtime through the service API.
type SimulatorConfig struct {
	MinLatencyMs int
	MaxLatencyMs int
	ErrorRate    float64
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	minLatency, _ := strconv.Atoi(getEnv("SIM_MIN_LATENCY_MS", "120"))
	maxLatency, _ := strconv.Atoi(getEnv("SIM_MAX_LATENCY_MS", "420"))
	errorRate, _ := strconv.ParseFloat(getEnv("SIM_ERROR_RATE", "0"), 64)

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Simulator: SimulatorConfig{
			MinLatencyMs: minLatency,
			MaxLatencyMs: maxLatency,
			ErrorRate:    errorRate,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
