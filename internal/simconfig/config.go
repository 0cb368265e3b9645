// Package simconfig is the single source of truth for the demo embedder's
// configuration. Only code here should read environment variables; the rest
// of the codebase takes configuration as plain parameters.
package simconfig

import (
	"os"
	"strconv"

	"patika/internal/sim"
)

// ServerConfig holds the demo HTTP+WebSocket embedder's settings.
type ServerConfig struct {
	Port     int
	TickRate int // ticks per second
}

// DefaultServer returns the default embedder configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:     8080,
		TickRate: 20,
	}
}

// ServerFromEnv returns the embedder configuration with environment
// variable overrides applied on top of DefaultServer.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()

	if p := getEnvInt("PATIKA_PORT", 0); p > 0 {
		cfg.Port = p
	}
	if r := getEnvInt("PATIKA_TICK_RATE", 0); r > 0 {
		cfg.TickRate = r
	}

	return cfg
}

// SimFromEnv returns a sim.Config seeded from DefaultConfig with environment
// variable overrides, for embedders that want the core's pool/queue/grid
// capacities tunable without a recompile.
func SimFromEnv() sim.Config {
	cfg := sim.DefaultConfig()

	if gt := getEnvString("PATIKA_GRID_TYPE", ""); gt == "rect" {
		cfg.GridType = sim.GridRect
	}
	if v := getEnvInt("PATIKA_MAX_AGENTS", 0); v > 0 {
		cfg.MaxAgents = uint32(v)
	}
	if v := getEnvInt("PATIKA_MAX_BARRACKS", 0); v > 0 {
		cfg.MaxBarracks = uint16(v)
	}
	if v := getEnvInt("PATIKA_GRID_WIDTH", 0); v > 0 {
		cfg.GridWidth = int32(v)
	}
	if v := getEnvInt("PATIKA_GRID_HEIGHT", 0); v > 0 {
		cfg.GridHeight = int32(v)
	}
	if v := getEnvInt("PATIKA_COMMAND_QUEUE_CAPACITY", 0); v > 0 {
		cfg.CommandQueueCapacity = v
	}
	if v := getEnvInt("PATIKA_EVENT_QUEUE_CAPACITY", 0); v > 0 {
		cfg.EventQueueCapacity = v
	}
	if v := getEnvInt("PATIKA_SEED", 0); v > 0 {
		cfg.Seed = uint64(v)
	}

	return cfg
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
