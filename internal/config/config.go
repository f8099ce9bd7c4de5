package config

import "github.com/FreeMasen/orbi-helpers/internal/router"

// Config is the persisted user configuration.
type Config struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// DeviceNameOverrides maps a MAC address or an original device name to
	// the display name to show instead. Keys are matched exactly.
	DeviceNameOverrides map[string]string `yaml:"device_name_overrides"`
}

// New returns an empty Config with a usable override map.
func New() *Config {
	return &Config{DeviceNameOverrides: map[string]string{}}
}

// Credentials returns the router login stored in c.
func (c *Config) Credentials() router.Credentials {
	return router.Credentials{Username: c.Username, Password: c.Password}
}

// ValidationError reports a config problem with a suggested fix.
type ValidationError struct {
	Field      string // yaml key, e.g. "device_name_overrides"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

// Validate reports problems that would make a fetch fail or an override
// never apply.
func Validate(c *Config) []ValidationError {
	var errs []ValidationError
	if c.Username == "" {
		errs = append(errs, ValidationError{
			Field:      "username",
			Message:    "username is empty",
			Suggestion: "run 'orbi-helper config set-username <name>'",
		})
	}
	if c.Password == "" {
		errs = append(errs, ValidationError{
			Field:      "password",
			Message:    "password is empty",
			Suggestion: "run 'orbi-helper config set-password <password>'",
		})
	}
	for _, key := range SortedOverrideKeys(c) {
		if key == "" {
			errs = append(errs, ValidationError{
				Field:      "device_name_overrides",
				Message:    "override with an empty key never matches",
				Suggestion: "run 'orbi-helper config clear-override \"\"'",
			})
			continue
		}
		if c.DeviceNameOverrides[key] == "" {
			errs = append(errs, ValidationError{
				Field:      "device_name_overrides." + key,
				Message:    "override replaces the name with an empty string",
				Suggestion: "set a replacement or run 'orbi-helper config clear-override " + key + "'",
			})
		}
	}
	return errs
}
