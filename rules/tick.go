package rules

import log "github.com/sirupsen/logrus"

// Tick runs the game one tick and returns the resulting frame. moves maps a
// snake index to its newly requested direction; snakes without an entry keep
// their heading.
//
// The order below is part of the game's semantics: input, movement, death,
// food, game over.
func (a *Arena) Tick(moves map[int]Direction) *Frame {
	a.turn++
	ticksTotal.Inc()

	entry := log.WithFields(log.Fields{
		"GameID": a.id,
		"Turn":   a.turn,
	})

	entry.Debug("apply moves")
	a.applyMoves(moves)

	// every alive snake grows by its new head here, snakes that don't eat
	// give the cell back when food is handled
	entry.Debug("move snakes")
	moved := a.aliveSnakes()
	for _, s := range moved {
		s.advance(s.direction)
		s.grow()
	}

	entry.Debug("check for death")
	for _, du := range checkForDeath(a.cfg.Width, a.cfg.Height, a.cfg.BlockSize, a.turn, moved) {
		if du.Snake.kill(du.Death) {
			deathsTotal.WithLabelValues(du.Death.Cause).Inc()
			entry.WithFields(log.Fields{
				"Snake": du.Snake.name,
				"Cause": du.Death.Cause,
				"Head":  du.Snake.head,
			}).Info("snake died")
		}
	}

	entry.Debug("handle food")
	a.feedSnakes()

	frame := a.Snapshot()
	if frame.GameOver {
		entry.WithField("Scoreboard", frame.Scoreboard().String()).Info("game over")
	}
	return frame
}

func (a *Arena) applyMoves(moves map[int]Direction) {
	for index, d := range moves {
		if index < 0 || index >= len(a.snakes) || !d.Valid() {
			log.WithFields(log.Fields{
				"GameID":    a.id,
				"Turn":      a.turn,
				"Index":     index,
				"Direction": d,
			}).Debug("ignoring move")
			continue
		}
		s := a.snakes[index]
		if a.cfg.ForbidReversal && d == s.direction.Opposite() {
			continue
		}
		s.direction = d
	}
}

// feedSnakes scores the snakes whose head is on the food and shrinks the rest
// back to their length before the move.
func (a *Arena) feedSnakes() {
	if !a.hasFood {
		a.replaceFood()
	}
	for _, s := range a.aliveSnakes() {
		if a.hasFood && s.head.Equal(a.food) {
			s.score++
			foodEatenTotal.Inc()
			log.WithFields(log.Fields{
				"GameID": a.id,
				"Turn":   a.turn,
				"Snake":  s.name,
				"Food":   a.food,
				"Score":  s.score,
			}).Info("snake ate")
			a.replaceFood()
			continue
		}
		s.shrink()
	}
}
