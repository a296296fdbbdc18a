package rules

import (
	"fmt"
	"time"

	"github.com/battlesnakeio/arena/config"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// defaultFoodAttempts is used when the configuration leaves FoodAttempts at zero.
const defaultFoodAttempts = 1000

// CreateArena validates the configuration, lays the snakes out and places the
// first food. No arena is returned when the configuration is unusable.
func CreateArena(cfg config.Config) (*Arena, error) {
	if cfg.FoodAttempts == 0 {
		cfg.FoodAttempts = defaultFoodAttempts
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a := newArena(cfg, getSnakes(cfg), rand.New(rand.NewSource(seed)))
	a.replaceFood()

	log.WithFields(log.Fields{
		"GameID": a.id,
		"Width":  cfg.Width,
		"Height": cfg.Height,
		"Block":  cfg.BlockSize,
		"Snakes": cfg.Snakes,
		"Seed":   seed,
	}).Info("arena created")
	return a, nil
}

func newArena(cfg config.Config, snakes []*Snake, rng *rand.Rand) *Arena {
	return &Arena{
		id:     uuid.NewV4().String(),
		cfg:    cfg,
		snakes: snakes,
		rng:    rng,
	}
}

// startingHead staggers snakes down a diagonal: snake i sits on row 3i with
// its tail in column 3i, so no two snakes share a row and every starting cell
// is on the board.
func startingHead(index, block int) Point {
	return Point{
		X: (3*index + initialLength - 1) * block,
		Y: 3 * index * block,
	}
}

func getSnakes(cfg config.Config) []*Snake {
	snakes := make([]*Snake, 0, cfg.Snakes)
	for i := 0; i < cfg.Snakes; i++ {
		name := fmt.Sprintf("Snake_%d", i)
		snakes = append(snakes, newSnake(i, name, colorFor(i), startingHead(i, cfg.BlockSize), cfg.BlockSize))
	}
	return snakes
}

func validate(cfg config.Config) error {
	switch {
	case cfg.BlockSize <= 0:
		return &ConfigurationError{Field: "block size", Reason: "must be positive"}
	case cfg.Width < cfg.BlockSize:
		return &ConfigurationError{Field: "width", Reason: "smaller than one block"}
	case cfg.Height < cfg.BlockSize:
		return &ConfigurationError{Field: "height", Reason: "smaller than one block"}
	case cfg.Width%cfg.BlockSize != 0:
		return &ConfigurationError{Field: "width", Reason: "not a multiple of the block size"}
	case cfg.Height%cfg.BlockSize != 0:
		return &ConfigurationError{Field: "height", Reason: "not a multiple of the block size"}
	case cfg.Snakes < 1:
		return &ConfigurationError{Field: "snake count", Reason: "at least one snake is required"}
	case cfg.FoodAttempts < 0:
		return &ConfigurationError{Field: "food attempts", Reason: "must not be negative"}
	}

	last := startingHead(cfg.Snakes-1, cfg.BlockSize)
	if last.X > cfg.Width-cfg.BlockSize || last.Y > cfg.Height-cfg.BlockSize {
		return &ConfigurationError{
			Field: "grid size",
			Reason: fmt.Sprintf("%dx%d with block %d cannot fit %d snakes without overlap",
				cfg.Width, cfg.Height, cfg.BlockSize, cfg.Snakes),
		}
	}
	return nil
}
