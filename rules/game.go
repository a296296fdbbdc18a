package rules

// SnakeInfo is the static part of a snake, recorded once per game.
type SnakeInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Game describes a game for recorders: everything about it that does not
// change from tick to tick, plus its status.
type Game struct {
	ID        string      `json:"id"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	BlockSize int         `json:"block_size"`
	TickRate  float64     `json:"tick_rate"`
	Status    GameStatus  `json:"status"`
	Snakes    []SnakeInfo `json:"snakes"`
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Snakes = append([]SnakeInfo(nil), g.Snakes...)
	return &clone
}
