package rules

// SnakeState is a read-only copy of one snake as of a given turn.
type SnakeState struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Body      []Point   `json:"body"`
	Direction Direction `json:"direction"`
	Alive     bool      `json:"alive"`
	Score     int       `json:"score"`
	Death     *Death    `json:"death,omitempty"`
}

// Head returns the first point in the body, false for an empty body.
func (s SnakeState) Head() (Point, bool) {
	if len(s.Body) == 0 {
		return Point{}, false
	}
	return s.Body[0], true
}

// Frame is the snapshot handed to presentation and recorders after every
// tick. It shares no memory with the arena.
type Frame struct {
	GameID    string       `json:"game_id"`
	Turn      int          `json:"turn"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	BlockSize int          `json:"block_size"`
	Snakes    []SnakeState `json:"snakes"`
	Food      *Point       `json:"food,omitempty"`
	GameOver  bool         `json:"game_over"`
}

// AliveSnakes returns all the alive snakes
func (f *Frame) AliveSnakes() []SnakeState {
	snakes := []SnakeState{}
	for _, s := range f.Snakes {
		if s.Alive {
			snakes = append(snakes, s)
		}
	}
	return snakes
}

// DeadSnakes returns all the dead snakes
func (f *Frame) DeadSnakes() []SnakeState {
	snakes := []SnakeState{}
	for _, s := range f.Snakes {
		if !s.Alive {
			snakes = append(snakes, s)
		}
	}
	return snakes
}

// Scoreboard lists the snakes' scores in creation order.
func (f *Frame) Scoreboard() Scoreboard {
	sb := make(Scoreboard, 0, len(f.Snakes))
	for _, s := range f.Snakes {
		sb = append(sb, ScoreEntry{Index: s.Index, Name: s.Name, Score: s.Score, Alive: s.Alive})
	}
	return sb
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Snakes = make([]SnakeState, len(f.Snakes))
	for i, s := range f.Snakes {
		s.Body = append([]Point(nil), s.Body...)
		if s.Death != nil {
			d := *s.Death
			s.Death = &d
		}
		clone.Snakes[i] = s
	}
	if f.Food != nil {
		food := *f.Food
		clone.Food = &food
	}
	return &clone
}
