package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
)

const (
	AppDirName = "orbi-helper"
	FileName   = "config.yaml"
)

// Store reads and writes the config file. It holds no cached state: every
// call goes to disk.
//
// Mutators are read-modify-write without locking. Two concurrent writers
// can lose one of the changes.
type Store struct {
	path      string
	configDir func() (string, error)
}

// NewStore returns a Store. An empty path resolves to the per-user config
// directory of the OS.
func NewStore(path string) *Store {
	return &Store{path: path, configDir: os.UserConfigDir}
}

// Path resolves the config file location without checking that it exists.
func (s *Store) Path() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	dir, err := s.configDir()
	if err != nil || dir == "" {
		if err == nil {
			err = errors.New("empty config directory")
		}
		return "", apperr.New(apperr.KindConfigPathUnresolved, "", err)
	}
	return filepath.Join(dir, AppDirName, FileName), nil
}

// Locate resolves the config file location and fails with a
// KindConfigMissing error naming the path when nothing is there yet.
func (s *Store) Locate() (string, error) {
	path, err := s.Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.Errorf(apperr.KindConfigMissing, path, "no file exists at %s", path)
		}
		return "", apperr.New(apperr.KindConfigMissing, path, err)
	}
	return path, nil
}

// Load reads and parses the config file.
func (s *Store) Load() (*Config, error) {
	path, err := s.Locate()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New(apperr.KindConfigParse, path, err)
	}
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperr.New(apperr.KindConfigParse, path, err)
	}
	if cfg.DeviceNameOverrides == nil {
		cfg.DeviceNameOverrides = map[string]string{}
	}
	return cfg, nil
}

// loadOrNew is Load, except a missing file yields an empty Config.
func (s *Store) loadOrNew() (*Config, error) {
	cfg, err := s.Load()
	if apperr.KindOf(err) == apperr.KindConfigMissing {
		return New(), nil
	}
	return cfg, err
}

// Save writes cfg over the config file, creating the directory if needed.
// The content goes to a temp file first and is renamed into place.
func (s *Store) Save(cfg *Config) error {
	path, err := s.Path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return apperr.New(apperr.KindConfigWrite, path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return apperr.New(apperr.KindConfigWrite, path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return apperr.New(apperr.KindConfigWrite, path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperr.New(apperr.KindConfigWrite, path, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return apperr.New(apperr.KindConfigWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.New(apperr.KindConfigWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return apperr.New(apperr.KindConfigWrite, path, err)
	}
	return nil
}

func (s *Store) update(apply func(cfg *Config)) error {
	cfg, err := s.loadOrNew()
	if err != nil {
		return err
	}
	apply(cfg)
	return s.Save(cfg)
}

// SetUsername stores the router username.
func (s *Store) SetUsername(username string) error {
	return s.update(func(cfg *Config) { cfg.Username = username })
}

// SetPassword stores the router password in clear text.
func (s *Store) SetPassword(password string) error {
	return s.update(func(cfg *Config) { cfg.Password = password })
}

// SetOverride maps key (a MAC or an original name) to replacement.
func (s *Store) SetOverride(key, replacement string) error {
	return s.update(func(cfg *Config) { cfg.DeviceNameOverrides[key] = replacement })
}

// ClearOverride removes key. Removing an absent key is not an error.
func (s *Store) ClearOverride(key string) error {
	return s.update(func(cfg *Config) { delete(cfg.DeviceNameOverrides, key) })
}

// SortedOverrideKeys returns the override keys of c in lexical order.
func SortedOverrideKeys(c *Config) []string {
	keys := make([]string, 0, len(c.DeviceNameOverrides))
	for k := range c.DeviceNameOverrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
