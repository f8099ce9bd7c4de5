package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", FileName)
	return NewStore(path), path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, path := tempStore(t)

	cfg := &Config{
		Username: "admin",
		Password: "hunter2",
		DeviceNameOverrides: map[string]string{
			"AA:BB:CC:DD:EE:FF": "Kitchen Speaker",
			"android-1234":      "Pixel",
			"Laptop":            "Work Laptop",
		},
	}
	require.NoError(t, store.Save(cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsKeyCase(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	content := "username: admin\npassword: pw\ndevice_name_overrides:\n  \"aa:bb:cc:dd:ee:ff\": lower\n  \"AA:BB:CC:DD:EE:FF\": upper\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "lower", cfg.DeviceNameOverrides["aa:bb:cc:dd:ee:ff"])
	assert.Equal(t, "upper", cfg.DeviceNameOverrides["AA:BB:CC:DD:EE:FF"])
}

func TestLoadWithoutOverrides(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("username: admin\npassword: pw\n"), 0o600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg.DeviceNameOverrides)
	assert.Empty(t, cfg.DeviceNameOverrides)
}

func TestLocateMissing(t *testing.T) {
	store, path := tempStore(t)

	_, err := store.Locate()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfigMissing, apperr.KindOf(err))
	assert.Contains(t, err.Error(), path)

	_, err = store.Load()
	assert.Equal(t, apperr.KindConfigMissing, apperr.KindOf(err))
}

func TestPathUnresolved(t *testing.T) {
	store := NewStore("")
	store.configDir = func() (string, error) { return "", errors.New("$HOME is not defined") }

	_, err := store.Path()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfigPathUnresolved, apperr.KindOf(err))

	_, err = store.Locate()
	assert.Equal(t, apperr.KindConfigPathUnresolved, apperr.KindOf(err))

	err = store.SetUsername("admin")
	assert.Equal(t, apperr.KindConfigPathUnresolved, apperr.KindOf(err))
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	store := NewStore("")
	store.configDir = func() (string, error) { return dir, nil }

	path, err := store.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, AppDirName, FileName), path)
}

func TestLoadMalformed(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("username: [unterminated\n"), 0o600))

	_, err := store.Load()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfigParse, apperr.KindOf(err))
}

func TestMutatorsCreateFile(t *testing.T) {
	store, path := tempStore(t)

	require.NoError(t, store.SetUsername("admin"))
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.SetPassword("secret"))
	require.NoError(t, store.SetOverride("AA:BB:CC:DD:EE:FF", "Printer"))
	require.NoError(t, store.SetOverride("Laptop", "Work Laptop"))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, map[string]string{
		"AA:BB:CC:DD:EE:FF": "Printer",
		"Laptop":            "Work Laptop",
	}, cfg.DeviceNameOverrides)

	require.NoError(t, store.ClearOverride("Laptop"))
	require.NoError(t, store.ClearOverride("not-there"))

	cfg, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"AA:BB:CC:DD:EE:FF": "Printer"}, cfg.DeviceNameOverrides)
	assert.Equal(t, "admin", cfg.Username)
}

func TestSaveWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// The parent "directory" is a regular file, so MkdirAll fails.
	store := NewStore(filepath.Join(blocker, FileName))
	err := store.Save(New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfigWrite, apperr.KindOf(err))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.Save(New()))
	require.NoError(t, store.Save(New()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

// Concurrent mutators may drop an update but must never leave a file
// that fails to parse.
func TestConcurrentMutatorsKeepFileParseable(t *testing.T) {
	store, _ := tempStore(t)
	require.NoError(t, store.Save(New()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.SetOverride("key", string(rune('a'+i)))
		}(i)
	}
	wg.Wait()

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DeviceNameOverrides, "key")
}

func TestSortedOverrideKeys(t *testing.T) {
	cfg := &Config{DeviceNameOverrides: map[string]string{"b": "1", "A": "2", "a": "3"}}
	assert.Equal(t, []string{"A", "a", "b"}, SortedOverrideKeys(cfg))
}
