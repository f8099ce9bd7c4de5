package server

import (
	"strings"

	"github.com/munnerz/goautoneg"
)

// Representation is a body format the device endpoint can produce.
type Representation string

const (
	RepresentationJSON Representation = "application/json"
	RepresentationText Representation = "text/plain"
)

// Negotiate picks a representation from an Accept header. Entries are
// tried in preference order; only an exact application/json or text/plain
// match counts (case-insensitive). Wildcards are not honored.
func Negotiate(accept string) (Representation, bool) {
	for _, a := range goautoneg.ParseAccept(accept) {
		if a.Q <= 0 {
			continue
		}
		switch Representation(strings.ToLower(a.Type + "/" + a.SubType)) {
		case RepresentationJSON:
			return RepresentationJSON, true
		case RepresentationText:
			return RepresentationText, true
		}
	}
	return "", false
}
