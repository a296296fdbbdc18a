package rules

// CheckForGameOver checks if the game has ended: a game is over once every
// snake is dead.
func CheckForGameOver(f *Frame) bool {
	return len(f.AliveSnakes()) == 0
}
