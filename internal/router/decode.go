package router

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/model"
)

// Firmware releases have spelled some keys differently. The first spelling
// of each list is the current one.
var (
	keysMAC                 = []string{"mac"}
	keysKind                = []string{"type"}
	keysModel               = []string{"model"}
	keysName                = []string{"name"}
	keysIP                  = []string{"ip"}
	keysConnectionType      = []string{"connectionType"}
	keysConnectedOrbi       = []string{"connectedOrbi", "ConnectedOrbi"}
	keysConnectedOrbiMAC    = []string{"connectedOrbiMac", "ConnectedOrbiMAC"}
	keysConnectionImg       = []string{"connectionImg"}
	keysBackhaulStatusStyle = []string{"backhaulStatusStyle"}
	keysBackhaulStatus      = []string{"backhaulStatus"}
	keysCategory            = []string{"category"}
	keysStatus              = []string{"status"}
	keysSatType             = []string{"satType", "sat_type"}
	keysLEDStatus           = []string{"ledStatus", "led_status"}
	keysLEDBrightness       = []string{"ledBrightness", "led_brightness"}
	keysLEDSync             = []string{"ledSync", "led_sync"}
	keysVoiceReg            = []string{"voiceReg", "voice_reg"}
)

// Decode parses a get_attached_devices response body. The top level must
// be an object holding "satellites" and "devices" arrays of objects.
// Unknown keys are ignored and missing ones decode to zero values.
func Decode(body []byte) (*model.AttachedDevices, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperr.Errorf(apperr.KindResponseParse, "", "response is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, apperr.Errorf(apperr.KindResponseParse, "", "response is not a JSON object")
	}
	members := objectMembers(root)

	out := model.NewAttachedDevices()
	var err error
	if out.Satellites, err = decodeList(members, "satellites"); err != nil {
		return nil, err
	}
	if out.Devices, err = decodeList(members, "devices"); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeList(members map[string]gjson.Result, key string) ([]model.Device, error) {
	list, ok := members[key]
	if !ok {
		return nil, apperr.Errorf(apperr.KindResponseParse, "", "response has no %q", key)
	}
	if !list.IsArray() {
		return nil, apperr.Errorf(apperr.KindResponseParse, "", "%q is not an array", key)
	}

	items := list.Array()
	out := make([]model.Device, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, apperr.Errorf(apperr.KindResponseParse, "", "%s[%d] is not an object", key, i)
		}
		d, err := decodeDevice(objectMembers(item))
		if err != nil {
			return nil, apperr.Errorf(apperr.KindResponseParse, "", "%s[%d]: %v", key, i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// objectMembers indexes the members of an object by exact key. Lookups go
// through this map rather than gjson paths so keys are never interpreted
// as path syntax.
func objectMembers(obj gjson.Result) map[string]gjson.Result {
	members := make(map[string]gjson.Result)
	obj.ForEach(func(k, v gjson.Result) bool {
		if _, seen := members[k.String()]; !seen {
			members[k.String()] = v
		}
		return true
	})
	return members
}

type fieldReader struct {
	members map[string]gjson.Result
	err     error
}

func (r *fieldReader) lookup(keys []string) (gjson.Result, bool) {
	for _, k := range keys {
		if v, ok := r.members[k]; ok && v.Type != gjson.Null {
			return v, true
		}
	}
	return gjson.Result{}, false
}

func (r *fieldReader) str(keys []string) string {
	v, ok := r.lookup(keys)
	if !ok {
		return ""
	}
	switch v.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return v.String()
	}
	if r.err == nil {
		r.err = fmt.Errorf("%q is not a scalar", keys[0])
	}
	return ""
}

func (r *fieldReader) uint32(keys []string) uint32 {
	v, ok := r.lookup(keys)
	if !ok {
		return 0
	}
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		if v.Str == "" {
			return 0
		}
		parsed := gjson.Parse(v.Str)
		if parsed.Type != gjson.Number {
			r.fail(keys[0], v.Raw)
			return 0
		}
		f = parsed.Num
	default:
		r.fail(keys[0], v.Raw)
		return 0
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		r.fail(keys[0], v.Raw)
		return 0
	}
	return uint32(f)
}

func (r *fieldReader) fail(key, raw string) {
	if r.err == nil {
		r.err = fmt.Errorf("%q: %s is not an unsigned integer", key, raw)
	}
}

func decodeDevice(members map[string]gjson.Result) (model.Device, error) {
	r := &fieldReader{members: members}
	d := model.Device{
		MAC:                 r.str(keysMAC),
		Kind:                r.str(keysKind),
		Model:               r.str(keysModel),
		Name:                r.str(keysName),
		IP:                  r.str(keysIP),
		ConnectionType:      r.str(keysConnectionType),
		ConnectedOrbi:       r.str(keysConnectedOrbi),
		ConnectedOrbiMAC:    r.str(keysConnectedOrbiMAC),
		ConnectionImg:       r.str(keysConnectionImg),
		BackhaulStatusStyle: r.str(keysBackhaulStatusStyle),
		BackhaulStatus:      r.str(keysBackhaulStatus),
		Category:            r.str(keysCategory),
		Status:              r.uint32(keysStatus),
		SatType:             r.uint32(keysSatType),
		LEDStatus:           r.uint32(keysLEDStatus),
		LEDBrightness:       r.uint32(keysLEDBrightness),
		LEDSync:             r.uint32(keysLEDSync),
		VoiceReg:            r.str(keysVoiceReg),
	}
	return d, r.err
}
