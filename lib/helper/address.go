package helper

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidMAC is returned when a hardware address cannot be parsed
var ErrInvalidMAC = errors.New("invalid MAC address")

// NormalizeMAC returns the address in lower-case colon separated form.
// Dash and dot separated forms are accepted.
func NormalizeMAC(address string) (string, error) {
	cleaned := strings.ToLower(strings.TrimSpace(address))
	cleaned = strings.NewReplacer("-", "", ":", "", ".", "").Replace(cleaned)
	if len(cleaned) != 12 {
		return "", ErrInvalidMAC
	}
	if _, err := strconv.ParseUint(cleaned, 16, 64); err != nil {
		return "", ErrInvalidMAC
	}
	var b strings.Builder
	b.Grow(17)
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(cleaned[i : i+2])
	}
	return b.String(), nil
}

// OUI returns the upper-case vendor prefix (first three octets) of an address
func OUI(address string) (string, error) {
	normalized, err := NormalizeMAC(address)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(normalized[:8]), nil
}

func firstOctet(address string) (uint8, bool) {
	normalized, err := NormalizeMAC(address)
	if err != nil {
		return 0, false
	}
	b, err := strconv.ParseUint(normalized[:2], 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(b), true
}

// IsLocallyAdministered reports whether the locally-administered bit is set.
// BLE random addresses and WiFi MAC randomisation both set it, so vendor
// prefixes of such addresses are meaningless.
func IsLocallyAdministered(address string) bool {
	b, ok := firstOctet(address)
	return ok && b&0x02 != 0
}

// GetAddressScope determines if a hardware address is unicast, multicast, or broadcast
func GetAddressScope(address string) string {
	normalized, err := NormalizeMAC(address)
	if err != nil {
		return ""
	}
	if normalized == "ff:ff:ff:ff:ff:ff" {
		return "broadcast"
	}
	if b, ok := firstOctet(normalized); ok && b&0x01 == 1 {
		return "multicast"
	}
	return "unicast"
}
