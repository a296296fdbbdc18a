// Package config holds the construction-time settings of an arena. Defaults
// come from the environment so the CLI flags only need to override them.
package config

import (
	"os"
	"strconv"
)

// Config is everything the simulation consumes at construction. The core does
// not pace itself; TickRate is read by the loop that drives it.
type Config struct {
	// Width and Height are in the same units as BlockSize, so a 640x480
	// board with 20 unit blocks is 32x24 cells.
	Width     int
	Height    int
	BlockSize int
	Snakes    int
	// TickRate is ticks per second.
	TickRate float64
	// FoodAttempts bounds rejection sampling when placing food.
	FoodAttempts int
	// ForbidReversal drops a direction change that points straight back
	// into the snake's neck. Off by default: reversing kills the snake.
	ForbidReversal bool
	// Seed for the food RNG, 0 picks one from the clock.
	Seed uint64
}

// Defaults tuned for a terminal window. Every value can be overridden with
// its ARENA_* environment variable.
var (
	DefaultWidth        = getEnvInt("ARENA_WIDTH", 640)
	DefaultHeight       = getEnvInt("ARENA_HEIGHT", 480)
	DefaultBlockSize    = getEnvInt("ARENA_BLOCK", 20)
	DefaultSnakes       = getEnvInt("ARENA_SNAKES", 3)
	DefaultTickRate     = getEnvFloat("ARENA_TICK_RATE", 8)
	DefaultFoodAttempts = getEnvInt("ARENA_FOOD_ATTEMPTS", 1000)
)

// Default returns a Config populated from the package defaults.
func Default() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BlockSize:    DefaultBlockSize,
		Snakes:       DefaultSnakes,
		TickRate:     DefaultTickRate,
		FoodAttempts: DefaultFoodAttempts,
	}
}

// Columns is the number of blocks across.
func (c Config) Columns() int {
	if c.BlockSize <= 0 {
		return 0
	}
	return c.Width / c.BlockSize
}

// Rows is the number of blocks down.
func (c Config) Rows() int {
	if c.BlockSize <= 0 {
		return 0
	}
	return c.Height / c.BlockSize
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvFloat(varName string, defaults float64) float64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaults
	}
	return f
}
