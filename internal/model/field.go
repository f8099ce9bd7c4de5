package model

import (
	"fmt"
	"strings"
)

// Field selects one displayable attribute of a Device.
type Field int

const (
	FieldMAC Field = iota
	FieldKind
	FieldModel
	FieldName
	FieldIP
	FieldOrbi
	FieldConnection
)

type fieldInfo struct {
	name  string // CLI spelling
	label string // table header
}

var fields = [...]fieldInfo{
	FieldMAC:        {name: "mac", label: "MAC"},
	FieldKind:       {name: "kind", label: "Type"},
	FieldModel:      {name: "model", label: "Model"},
	FieldName:       {name: "name", label: "Name"},
	FieldIP:         {name: "ip", label: "IP"},
	FieldOrbi:       {name: "orbi", label: "Orbi"},
	FieldConnection: {name: "connection", label: "Connection"},
}

// DefaultFields is used when no fields are requested.
var DefaultFields = []Field{FieldName, FieldIP, FieldConnection, FieldKind}

// AllFields lists every field in declaration order.
func AllFields() []Field {
	out := make([]Field, len(fields))
	for i := range fields {
		out[i] = Field(i)
	}
	return out
}

func (f Field) valid() bool {
	return f >= 0 && int(f) < len(fields)
}

// String returns the CLI name of the field.
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fields[f].name
}

// Label returns the table header for the field.
func (f Field) Label() string {
	if !f.valid() {
		return ""
	}
	return fields[f].label
}

// Value returns the attribute of d selected by f.
func (f Field) Value(d *Device) string {
	switch f {
	case FieldMAC:
		return d.MAC
	case FieldKind:
		return d.Kind
	case FieldModel:
		return d.Model
	case FieldName:
		return d.Name
	case FieldIP:
		return d.IP
	case FieldOrbi:
		return d.ConnectedOrbi
	case FieldConnection:
		return d.ConnectionType
	}
	return ""
}

// ParseField maps a CLI name (case-insensitive) to a Field.
func ParseField(s string) (Field, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, info := range fields {
		if info.name == want {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown device field %q (valid: %s)", s, strings.Join(FieldNames(), ", "))
}

// ParseFields parses every entry of names, stopping at the first bad one.
func ParseFields(names []string) ([]Field, error) {
	out := make([]Field, 0, len(names))
	for _, n := range names {
		f, err := ParseField(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// FieldNames returns the CLI names of all fields.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, info := range fields {
		names[i] = info.name
	}
	return names
}
