package generator

// Options configures puzzle generation behavior.
type Options struct {
	// Seed makes generation reproducible (0 = time-based seed).
	Seed int64

	// ExtraBlanks is the number of additional safe clue cells to blank
	// out, widening the variable set beyond the mine cells themselves.
	ExtraBlanks int
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Seed:        0,
		ExtraBlanks: 0,
	}
}
