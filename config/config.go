package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Dosada05/tournament-bracket/models"
)

// Config holds the engine defaults a tournament format starts from.
type Config struct {
	Format   models.Format
	RNGSeed  uint64
	LogLevel slog.Level
}

// Load reads the configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	format := models.DefaultFormat()

	maxPerGroup, err := intEnv("BRACKET_MAX_PER_GROUP", format.MaxPerGroup)
	if err != nil {
		return nil, err
	}
	if maxPerGroup < 2 {
		return nil, fmt.Errorf("BRACKET_MAX_PER_GROUP must be at least 2, got %d", maxPerGroup)
	}
	format.MaxPerGroup = maxPerGroup

	if format.AutoCalculateGroups, err = boolEnv("BRACKET_AUTO_GROUPS", format.AutoCalculateGroups); err != nil {
		return nil, err
	}

	perGroup, err := intEnv("BRACKET_QUALIFIERS_PER_GROUP", format.QualifiersPerGroup)
	if err != nil {
		return nil, err
	}
	if perGroup < 1 {
		return nil, fmt.Errorf("BRACKET_QUALIFIERS_PER_GROUP must be positive, got %d", perGroup)
	}
	format.QualifiersPerGroup = perGroup

	if mode := os.Getenv("BRACKET_SEEDING_MODE"); mode != "" {
		format.SeedingMode = models.SeedingMode(strings.ToLower(strings.TrimSpace(mode)))
		if !format.SeedingMode.Valid() {
			return nil, fmt.Errorf("invalid BRACKET_SEEDING_MODE %q: want %s or %s", mode, models.SeedingByeFirst, models.SeedingPositions)
		}
	}

	if format.AvoidSameGroup, err = boolEnv("BRACKET_AVOID_SAME_GROUP", format.AvoidSameGroup); err != nil {
		return nil, err
	}

	var seed uint64
	if seedStr := os.Getenv("BRACKET_RNG_SEED"); seedStr != "" {
		seed, err = strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BRACKET_RNG_SEED environment variable: %w", err)
		}
	}

	level, err := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Format:   format,
		RNGSeed:  seed,
		LogLevel: level,
	}

	return cfg, nil
}

// ParseLogLevel accepts debug, info, warn and error. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
