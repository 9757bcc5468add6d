package sim

// Config holds the tunable world parameters. Distances are in meters,
// speeds in meters per second.
type Config struct {
	Width        float32
	Height       float32
	TickRate     int
	MaxSpeed     float32
	ArriveRadius float32
}

// DefaultConfig returns the standard field: 9x6 meters centered on the
// origin, stepped at 20 Hz.
func DefaultConfig() Config {
	return Config{
		Width:        9,
		Height:       6,
		TickRate:     20,
		MaxSpeed:     2.2,
		ArriveRadius: 0.1,
	}
}

// Normalized replaces non-positive fields with their defaults so a partially
// filled config is still usable.
func (c Config) Normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = def.MaxSpeed
	}
	if c.ArriveRadius <= 0 {
		c.ArriveRadius = def.ArriveRadius
	}
	return c
}
