package game

// Options provides options for the game
type Options struct {
	// Lives are how many rounds a player can lose
	Lives int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Lives: 3,
	}
}
