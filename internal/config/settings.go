package config

import "github.com/spf13/viper"

// Settings are the runtime options of one invocation. They come from flags
// and ORBI_HELPER_* environment variables, never from the config file.
type Settings struct {
	ConfigFile string `mapstructure:"config"`
	Router     string `mapstructure:"router"`
	Listen     string `mapstructure:"listen"`
	LogLevel   string `mapstructure:"log_level"`
}

const (
	DefaultRouter   = "orbilogin.com"
	DefaultListen   = "127.0.0.1:3030"
	DefaultLogLevel = "warn"
)

// LoadSettings applies defaults and then unmarshals whatever v has bound.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Router:   DefaultRouter,
		Listen:   DefaultListen,
		LogLevel: DefaultLogLevel,
	}
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	if s.Router == "" {
		s.Router = DefaultRouter
	}
	if s.Listen == "" {
		s.Listen = DefaultListen
	}
	return s, nil
}
