package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue(t *testing.T) {
	d := &Device{
		MAC:            "AA:BB:CC:DD:EE:FF",
		Kind:           "WSTA",
		Model:          "iPhone",
		Name:           "Laptop",
		IP:             "10.0.0.5",
		ConnectedOrbi:  "Living Room",
		ConnectionType: "5GHz",
	}

	tests := []struct {
		field Field
		want  string
	}{
		{FieldMAC, "AA:BB:CC:DD:EE:FF"},
		{FieldKind, "WSTA"},
		{FieldModel, "iPhone"},
		{FieldName, "Laptop"},
		{FieldIP, "10.0.0.5"},
		{FieldOrbi, "Living Room"},
		{FieldConnection, "5GHz"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Value(d))
		})
	}
}

func TestFieldLabels(t *testing.T) {
	labels := make([]string, 0)
	for _, f := range AllFields() {
		labels = append(labels, f.Label())
	}
	assert.Equal(t, []string{"MAC", "Type", "Model", "Name", "IP", "Orbi", "Connection"}, labels)
	assert.Equal(t, "", Field(99).Label())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("orbi")
	require.NoError(t, err)
	assert.Equal(t, FieldOrbi, f)

	f, err = ParseField(" IP ")
	require.NoError(t, err)
	assert.Equal(t, FieldIP, f)

	_, err = ParseField("hostname")
	assert.ErrorContains(t, err, "unknown device field")
}

func TestParseFields(t *testing.T) {
	got, err := ParseFields([]string{"name", "ip"})
	require.NoError(t, err)
	assert.Equal(t, []Field{FieldName, FieldIP}, got)

	_, err = ParseFields([]string{"name", "bogus"})
	assert.Error(t, err)
}

func TestDefaultFields(t *testing.T) {
	assert.Equal(t, []Field{FieldName, FieldIP, FieldConnection, FieldKind}, DefaultFields)
}
