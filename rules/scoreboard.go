package rules

import (
	"fmt"
	"strings"
)

// ScoreEntry is one line of the scoreboard.
type ScoreEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Alive bool   `json:"alive"`
}

// Scoreboard is ordered by snake creation.
type Scoreboard []ScoreEntry

// String renders the board as "Snake_0: 2, Snake_1: 0".
func (sb Scoreboard) String() string {
	parts := make([]string, 0, len(sb))
	for _, e := range sb {
		parts = append(parts, fmt.Sprintf("%s: %d", e.Name, e.Score))
	}
	return strings.Join(parts, ", ")
}

// Leaders returns the entries holding the highest score.
func (sb Scoreboard) Leaders() Scoreboard {
	var leaders Scoreboard
	best := -1
	for _, e := range sb {
		switch {
		case e.Score > best:
			best = e.Score
			leaders = Scoreboard{e}
		case e.Score == best:
			leaders = append(leaders, e)
		}
	}
	return leaders
}
