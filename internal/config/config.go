// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/trumparr/internal/transport"
)

// Config is the root configuration structure.
type Config struct {
	SleepTimer int                      `toml:"sleep_timer"`
	Radarr     LibraryConfig            `toml:"radarr"`
	Sonarr     LibraryConfig            `toml:"sonarr"`
	LogFiles   LogFilesConfig           `toml:"log_files"`
	Trackers   []string                 `toml:"trackers"`
	Tracker    map[string]TrackerConfig `toml:"tracker"`
	HTTPRetry  RetryConfig              `toml:"http_retry"`
}

// LibraryConfig is a Radarr or Sonarr connection.
type LibraryConfig struct {
	Enabled   bool   `toml:"enabled"`
	APIKey    string `toml:"api_key"`
	URL       string `toml:"url"`
	APISuffix string `toml:"api_suffix"`
}

// LogFilesConfig names the script log and the report files.
type LogFilesConfig struct {
	OutputPath     string `toml:"output_path"`
	ScriptLog      string `toml:"script_log"`
	NotFoundRadarr string `toml:"not_found_radarr"`
	NotFoundSonarr string `toml:"not_found_sonarr"`
	TrumpRadarr    string `toml:"trump_radarr"`
	TrumpSonarr    string `toml:"trump_sonarr"`
}

// TrackerConfig holds the credentials of one tracker.
type TrackerConfig struct {
	APIKey       string   `toml:"api_key"`
	URL          string   `toml:"url,omitempty"`
	BannedGroups []string `toml:"banned_groups,omitempty"`
}

// RetryConfig is the HTTP retry policy; durations are in seconds.
type RetryConfig struct {
	Attempts     int     `toml:"attempts"`
	StartTimeout float64 `toml:"start_timeout"`
	Factor       float64 `toml:"factor"`
	MaxTimeout   float64 `toml:"max_timeout"`
	Statuses     []int   `toml:"statuses"`
}

// Default returns the configuration used for keys absent from the file.
func Default() *Config {
	p := transport.DefaultRetryPolicy()
	return &Config{
		SleepTimer: 10,
		Radarr: LibraryConfig{
			Enabled:   true,
			URL:       "http://localhost:7878",
			APISuffix: "/api/v3/movie",
		},
		Sonarr: LibraryConfig{
			Enabled:   true,
			URL:       "http://localhost:8989",
			APISuffix: "/api/v3/series",
		},
		LogFiles: LogFilesConfig{
			OutputPath:     "logs/",
			ScriptLog:      "script.log",
			NotFoundRadarr: "radarr-not_found.txt",
			NotFoundSonarr: "sonarr-not_found.txt",
			TrumpRadarr:    "radarr-trump.csv",
			TrumpSonarr:    "sonarr-trump.csv",
		},
		Tracker: make(map[string]TrackerConfig),
		HTTPRetry: RetryConfig{
			Attempts:     p.Attempts,
			StartTimeout: p.InitialDelay.Seconds(),
			Factor:       p.Factor,
			MaxTimeout:   p.MaxDelay.Seconds(),
			Statuses:     p.Statuses,
		},
	}
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file. Unresolved
// environment variables are still an error. Used when command-line flags
// must be applied before validating.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// normalize lower-cases tracker names so lookups are case-insensitive.
func (c *Config) normalize() {
	for i, name := range c.Trackers {
		c.Trackers[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if c.Tracker == nil {
		c.Tracker = make(map[string]TrackerConfig)
	}
	for name, tc := range c.Tracker {
		if lower := strings.ToLower(name); lower != name {
			delete(c.Tracker, name)
			c.Tracker[lower] = tc
		}
	}
}

// RetryPolicy converts the retry section to a transport policy.
func (c *Config) RetryPolicy() transport.RetryPolicy {
	r := c.HTTPRetry
	return transport.RetryPolicy{
		Attempts:     r.Attempts,
		InitialDelay: seconds(r.StartTimeout),
		Factor:       r.Factor,
		MaxDelay:     seconds(r.MaxTimeout),
		Statuses:     r.Statuses,
	}
}

// SleepDuration is the delay between items sent to the trackers.
func (c *Config) SleepDuration() time.Duration {
	return time.Duration(c.SleepTimer) * time.Second
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references. Unresolved references
// are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
