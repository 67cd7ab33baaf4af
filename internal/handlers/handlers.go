package handlers

import "github.com/InfraSecConsult/surveillance-detector-go/internal/registry"

var (
	_ registry.DetectionHandler = (*BLEHandler)(nil)
	_ registry.DetectionHandler = (*WiFiHandler)(nil)
	_ registry.DetectionHandler = (*CellularHandler)(nil)
	_ registry.DetectionHandler = (*GNSSHandler)(nil)
	_ registry.DetectionHandler = (*UltrasonicHandler)(nil)
	_ registry.DetectionHandler = (*SatelliteHandler)(nil)
)

// All returns one handler per protocol, ready to be registered
func All(opts Options) []registry.DetectionHandler {
	return []registry.DetectionHandler{
		NewWiFiHandler(opts),
		NewBLEHandler(opts),
		NewCellularHandler(opts),
		NewGNSSHandler(opts),
		NewUltrasonicHandler(opts),
		NewSatelliteHandler(opts),
	}
}
