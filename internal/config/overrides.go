package config

// Overrides are command-line values that take precedence over the file.
// Nil fields leave the file value in place.
type Overrides struct {
	Radarr     bool // scan only the selected libraries when either is set
	Sonarr     bool
	SleepTimer *int
	OutputPath *string
	ScriptLog  *string
}

// ApplyOverrides merges command-line values into the config.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Radarr || o.Sonarr {
		c.Radarr.Enabled = o.Radarr
		c.Sonarr.Enabled = o.Sonarr
	}
	if o.SleepTimer != nil {
		c.SleepTimer = *o.SleepTimer
	}
	if o.OutputPath != nil {
		c.LogFiles.OutputPath = *o.OutputPath
	}
	if o.ScriptLog != nil {
		c.LogFiles.ScriptLog = *o.ScriptLog
	}
}
