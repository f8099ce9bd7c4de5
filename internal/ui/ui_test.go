package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	out := FormatError("Failed to load config", "no file exists at /tmp/x", "run 'orbi-helper config init'")
	assert.Contains(t, out, "Error: Failed to load config")
	assert.Contains(t, out, "  no file exists at /tmp/x\n")
	assert.Contains(t, out, "Hint: run 'orbi-helper config init'")

	bare := FormatError("boom", "", "")
	assert.NotContains(t, bare, "Hint")
}

func TestValidationLines(t *testing.T) {
	var buf bytes.Buffer
	ValidationOK(&buf, "username", "set")
	ValidationErr(&buf, "password", "password is empty", "set it")
	ValidationErr(&buf, "device_name_overrides", "bad", "")

	out := buf.String()
	assert.Contains(t, out, "username: set")
	assert.Contains(t, out, "password: password is empty")
	assert.Contains(t, out, "Hint: set it")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Hint:")))
}

func TestKeyValue(t *testing.T) {
	var buf bytes.Buffer
	KeyValue(&buf, "username", "admin")
	assert.Equal(t, "  username:  admin\n", buf.String())
}
