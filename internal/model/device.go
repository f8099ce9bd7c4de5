package model

// Device is one endpoint reported by the router: either a client attached
// to the network or a satellite access point in the mesh.
//
// Name is the only field changed after decoding (by name overrides). The
// rest is a snapshot of the router response.
type Device struct {
	MAC                 string `json:"mac"`
	Kind                string `json:"type"`
	Model               string `json:"model"`
	Name                string `json:"name"`
	IP                  string `json:"ip"`
	ConnectionType      string `json:"connectionType"`
	ConnectedOrbi       string `json:"connectedOrbi"`
	ConnectedOrbiMAC    string `json:"connectedOrbiMac"`
	ConnectionImg       string `json:"connectionImg"`
	BackhaulStatusStyle string `json:"backhaulStatusStyle"`
	BackhaulStatus      string `json:"backhaulStatus"`
	Category            string `json:"category"`
	Status              uint32 `json:"status"`
	SatType             uint32 `json:"satType"`
	LEDStatus           uint32 `json:"ledStatus"`
	LEDBrightness       uint32 `json:"ledBrightness"`
	LEDSync             uint32 `json:"ledSync"`
	VoiceReg            string `json:"voiceReg"`
}

// AttachedDevices is the decoded response of one fetch.
type AttachedDevices struct {
	Satellites []Device `json:"satellites"`
	Devices    []Device `json:"devices"`
}

// NewAttachedDevices returns an empty, non-nil result so JSON output always
// carries both arrays.
func NewAttachedDevices() *AttachedDevices {
	return &AttachedDevices{
		Satellites: []Device{},
		Devices:    []Device{},
	}
}
