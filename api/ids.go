package api

import "strings"

// The API hands back full resource paths ("/2.2/networks/123/devices/abc")
// instead of bare identifiers; the ID is the trailing segment. These
// helpers recover it. URLs that don't match the expected shape are
// returned unchanged.

const (
	networkPrefix = "/2.2/networks/"
	eeroPrefix    = "/2.2/eeros/"
)

func afterLast(url, marker string) string {
	if i := strings.LastIndex(url, marker); i >= 0 {
		return url[i+len(marker):]
	}
	return url
}

// NetworkID extracts the network ID from a network resource URL.
func NetworkID(url string) string {
	return strings.TrimPrefix(url, networkPrefix)
}

// EeroID extracts the node ID from an eero resource URL.
func EeroID(url string) string {
	return strings.TrimPrefix(url, eeroPrefix)
}

// DeviceID extracts the device ID from a device resource URL.
func DeviceID(url string) string {
	return afterLast(url, "/devices/")
}

// ProfileID extracts the profile ID from a profile resource URL.
func ProfileID(url string) string {
	return afterLast(url, "/profiles/")
}

// ReservationID extracts the reservation ID from a reservation resource URL.
func ReservationID(url string) string {
	return afterLast(url, "/reservations/")
}

// ForwardID extracts the rule ID from a port forward resource URL.
func ForwardID(url string) string {
	return afterLast(url, "/forwards/")
}
