package core

// RuntimeConfig contains configuration passed to the host at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the simulated seconds covered by one tick.
func (c RuntimeConfig) TickDuration() Seconds {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / Seconds(c.TickRate)
}
