package rules

const (
	// DeathCauseSnakeCollision is the death reason when 2 snakes collide with each other.
	// Both the snake that ran into the other and the one it hit get this cause.
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseSnakeSelfCollision is when a snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
)

// Death records when and why a snake died.
type Death struct {
	Turn  int    `json:"turn"`
	Cause string `json:"cause"`
}
