package config

// Overrides carries command-line values. Nil fields leave the config alone.
type Overrides struct {
	Debug           bool
	Width           *int
	Height          *int
	LogLevel        *string
	LogFile         *string
	Gravity         *float64
	ImpactThreshold *float64
	Volume          *float64
	Muted           *bool
	StartupScript   *string
	Seed            *uint64
}

// Apply writes the set overrides into cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.Width != nil && *o.Width > 0 {
		cfg.Window.Width = *o.Width
	}
	if o.Height != nil && *o.Height > 0 {
		cfg.Window.Height = *o.Height
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		cfg.Logging.LogFile = *o.LogFile
	}
	if o.Gravity != nil {
		cfg.Physics.Gravity = *o.Gravity
	}
	if o.ImpactThreshold != nil {
		cfg.Physics.ImpactThreshold = *o.ImpactThreshold
	}
	if o.Volume != nil {
		cfg.Audio.Volume = *o.Volume
	}
	if o.Muted != nil {
		cfg.Audio.Muted = *o.Muted
	}
	if o.StartupScript != nil {
		cfg.Scene.StartupScript = *o.StartupScript
	}
	if o.Seed != nil {
		cfg.Scene.Seed = *o.Seed
	}
}
