package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var macAddressRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

// Protocol identifies the radio or sensor an observation came from
type Protocol string

const (
	ProtocolWiFi       Protocol = "wifi"
	ProtocolBLE        Protocol = "ble"
	ProtocolCellular   Protocol = "cellular"
	ProtocolGNSS       Protocol = "gnss"
	ProtocolUltrasonic Protocol = "ultrasonic"
	ProtocolSatellite  Protocol = "satellite"
)

// AllProtocols lists every protocol in a stable order
var AllProtocols = []Protocol{
	ProtocolWiFi, ProtocolBLE, ProtocolCellular, ProtocolGNSS, ProtocolUltrasonic, ProtocolSatellite,
}

// IsValid reports whether p is one of the known protocols
func (p Protocol) IsValid() bool {
	for _, known := range AllProtocols {
		if p == known {
			return true
		}
	}
	return false
}

// ParseProtocol converts a case-insensitive protocol name
func ParseProtocol(s string) (Protocol, error) {
	p := Protocol(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown protocol %q", s)
	}
	return p, nil
}

// Location is a WGS84 position
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CellInfo carries the serving-cell parameters reported by the modem
type CellInfo struct {
	MCC        int    `json:"mcc"`
	MNC        int    `json:"mnc"`
	LAC        int    `json:"lac"`                 // LAC for 2G/3G, TAC for LTE/NR
	CellID     int64  `json:"cell_id"`
	RAT        string `json:"rat"`                 // GSM, UMTS, LTE, NR
	PrevRAT    string `json:"prev_rat"`            // RAT of the previous serving cell, if known
	PrevLAC    int    `json:"prev_lac"`            // area code of the previous serving cell
	LACChanges int    `json:"lac_changes"`         // area code changes observed in the last few minutes
	Ciphering  string `json:"ciphering"`           // A5/0, A5/1, A5/3, EEA0...
	Neighbors  *int   `json:"neighbors,omitempty"` // neighbour cells advertised, nil when not reported
}

// GNSSInfo summarises one GNSS measurement epoch
type GNSSInfo struct {
	Satellites       int     `json:"satellites"`
	MeanCN0          float64 `json:"mean_cn0"`   // dB-Hz
	CN0StdDev        float64 `json:"cn0_stddev"` // dB-Hz
	AGCLevel         float64 `json:"agc_level"`  // dB relative to the receiver's baseline, negative = drop
	PositionJump     bool    `json:"position_jump"`
	ClockJump        bool    `json:"clock_jump"`
	JammingIndicator int     `json:"jamming_indicator"` // 0-255 as reported by the receiver
}

// UltrasonicInfo describes a detected near-ultrasonic tone
type UltrasonicInfo struct {
	FrequencyHz float64 `json:"frequency_hz"`
	AmplitudeDb float64 `json:"amplitude_db"`
	DurationMs  int     `json:"duration_ms"`
}

// SatelliteInfo describes a non-terrestrial network attach
type SatelliteInfo struct {
	Network            string `json:"network"`
	TerrestrialRSSI    int    `json:"terrestrial_rssi"`
	UserInitiated      bool   `json:"user_initiated"`
	UnexpectedHandover bool   `json:"unexpected_handover"`
}

// Observation is one raw sighting produced by an external scanner. It is never
// mutated after it has been produced.
type Observation struct {
	ID             string            `json:"id,omitempty"`
	Protocol       Protocol          `json:"protocol"`
	Identifier     string            `json:"identifier,omitempty"` // SSID or BLE device name
	MAC            string            `json:"mac,omitempty"`
	RSSI           int               `json:"rssi,omitempty"` // dBm, 0 when the scanner did not report it
	Payload        []byte            `json:"payload,omitempty"`
	ManufacturerID uint16            `json:"manufacturer_id,omitempty"`
	ServiceUUIDs   []string          `json:"service_uuids,omitempty"`
	ServiceData    map[string][]byte `json:"service_data,omitempty"`
	Encryption     string            `json:"encryption,omitempty"` // WiFi security: OPEN, WEP, WPA2...
	Timestamp      time.Time         `json:"timestamp"`
	Location       *Location         `json:"location,omitempty"`
	Cell           *CellInfo         `json:"cell,omitempty"`
	GNSS           *GNSSInfo         `json:"gnss,omitempty"`
	Ultrasonic     *UltrasonicInfo   `json:"ultrasonic,omitempty"`
	Satellite      *SatelliteInfo    `json:"satellite,omitempty"`
	Environment    Environment       `json:"environment"`
}

// HasLocation reports whether the observation carries a position
func (o Observation) HasLocation() bool {
	return o.Location != nil
}

// HasRSSI reports whether the scanner measured a signal strength
func (o Observation) HasRSSI() bool {
	return o.RSSI < 0
}

// Signal returns the measured signal strength, or nil when none was reported
func (o Observation) Signal() *int {
	if !o.HasRSSI() {
		return nil
	}
	rssi := o.RSSI
	return &rssi
}

// Validate performs structural checks on an observation
func (o Observation) Validate() error {
	if !o.Protocol.IsValid() {
		return fmt.Errorf("invalid protocol %q", o.Protocol)
	}
	if o.Timestamp.IsZero() {
		return errors.New("timestamp must be set")
	}
	if o.MAC != "" && !IsValidMACAddress(o.MAC) {
		return fmt.Errorf("invalid MAC address %q", o.MAC)
	}
	if o.RSSI > 0 {
		return fmt.Errorf("signal strength must be negative dBm, got %d", o.RSSI)
	}
	if o.Location != nil {
		if o.Location.Latitude < -90 || o.Location.Latitude > 90 {
			return fmt.Errorf("latitude out of range: %f", o.Location.Latitude)
		}
		if o.Location.Longitude < -180 || o.Location.Longitude > 180 {
			return fmt.Errorf("longitude out of range: %f", o.Location.Longitude)
		}
	}
	switch o.Protocol {
	case ProtocolCellular:
		if o.Cell == nil {
			return errors.New("cellular observation without cell info")
		}
	case ProtocolGNSS:
		if o.GNSS == nil {
			return errors.New("gnss observation without measurement")
		}
	case ProtocolUltrasonic:
		if o.Ultrasonic == nil {
			return errors.New("ultrasonic observation without tone")
		}
	case ProtocolSatellite:
		if o.Satellite == nil {
			return errors.New("satellite observation without network info")
		}
	}
	return nil
}

// IsValidMACAddress checks for a colon or dash separated 48-bit address
func IsValidMACAddress(address string) bool {
	return macAddressRegex.MatchString(address)
}
