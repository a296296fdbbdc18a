package rules

import log "github.com/sirupsen/logrus"

// placeFood draws uniformly random cells until one is outside every snake,
// living or dead. It gives up after FoodAttempts draws.
func (a *Arena) placeFood() error {
	occupied := a.occupiedCells()
	cols, rows := a.cfg.Columns(), a.cfg.Rows()
	for i := 0; i < a.cfg.FoodAttempts; i++ {
		p := Point{
			X: a.rng.Intn(cols) * a.cfg.BlockSize,
			Y: a.rng.Intn(rows) * a.cfg.BlockSize,
		}
		if _, ok := occupied[p]; !ok {
			a.food = p
			a.hasFood = true
			return nil
		}
	}
	a.hasFood = false
	return ErrFoodPlacementExhausted
}

// replaceFood places food and logs a failure instead of returning it: a full
// board is not fatal, the next tick tries again.
func (a *Arena) replaceFood() {
	if err := a.placeFood(); err != nil {
		foodPlacementFailures.Inc()
		log.WithError(err).WithFields(log.Fields{
			"GameID":   a.id,
			"Turn":     a.turn,
			"Attempts": a.cfg.FoodAttempts,
		}).Warn("no food this turn")
	}
}

func (a *Arena) occupiedCells() map[Point]struct{} {
	occupied := map[Point]struct{}{}
	for _, s := range a.snakes {
		for _, p := range s.body {
			occupied[p] = struct{}{}
		}
	}
	return occupied
}
