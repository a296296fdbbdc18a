package rules

// initialLength is the body length of a freshly created snake.
const initialLength = 3

// Snake is one player's agent. Its state is only mutated by the Arena that
// owns it; everything exported here is read-only.
type Snake struct {
	index int
	name  string
	color string
	block int

	head      Point
	body      []Point
	direction Direction
	alive     bool
	score     int
	death     *Death
}

// newSnake lays the body out to the left of head, heading right.
func newSnake(index int, name, color string, head Point, block int) *Snake {
	body := make([]Point, 0, initialLength)
	for i := 0; i < initialLength; i++ {
		body = append(body, Point{X: head.X - i*block, Y: head.Y})
	}
	return &Snake{
		index:     index,
		name:      name,
		color:     color,
		block:     block,
		head:      head,
		body:      body,
		direction: DirectionRight,
		alive:     true,
	}
}

// advance moves the head one block in the given direction. The new head is
// not part of the body until grow is called, which lets the arena decide
// whether the snake ate before settling its length.
func (s *Snake) advance(direction Direction) {
	s.head = s.head.Add(direction.offset(s.block))
}

// grow commits the current head to the front of the body.
func (s *Snake) grow() {
	s.body = append([]Point{s.head}, s.body...)
}

// shrink drops the last cell of the body.
func (s *Snake) shrink() {
	if len(s.body) <= 1 {
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// kill marks the snake dead. A snake only dies once; the first recorded death
// is kept.
func (s *Snake) kill(d *Death) bool {
	if !s.alive {
		return false
	}
	s.alive = false
	s.death = d
	return true
}

// occupancy counts how many body segments sit on each cell.
func (s *Snake) occupancy() map[Point]int {
	cells := make(map[Point]int, len(s.body))
	for _, p := range s.body {
		cells[p]++
	}
	return cells
}

// Index is the snake's position in creation order.
func (s *Snake) Index() int { return s.index }

// Name of the snake as shown on the scoreboard.
func (s *Snake) Name() string { return s.name }

// Color of the snake for presentation.
func (s *Snake) Color() string { return s.color }

// Head returns the first point in the body
func (s *Snake) Head() Point { return s.head }

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	body := make([]Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len is the body length.
func (s *Snake) Len() int { return len(s.body) }

// Direction is the current heading.
func (s *Snake) Direction() Direction { return s.direction }

// Alive reports whether the snake is still playing.
func (s *Snake) Alive() bool { return s.alive }

// Score is the number of food cells eaten.
func (s *Snake) Score() int { return s.score }

// Death returns how the snake died, nil while it is alive.
func (s *Snake) Death() *Death {
	if s.death == nil {
		return nil
	}
	d := *s.death
	return &d
}
