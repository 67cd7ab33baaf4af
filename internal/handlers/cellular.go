package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// RapidAreaChanges is the number of LAC/TAC changes within a few minutes that
// counts as suspicious
const RapidAreaChanges = 3

var cellularDeviceTypes = []model.DeviceType{
	model.DeviceTypeCellSiteSimulator,
	model.DeviceTypeFakeBaseStation2G,
	model.DeviceTypeRogueFemtocell,
	model.DeviceTypeCellularBaitTower,
}

var nullCiphers = map[string]bool{"A5/0": true, "UEA0": true, "EEA0": true, "NEA0": true}

// CellularHandler looks for cell-site simulator behaviour in serving-cell reports
type CellularHandler struct {
	*base
}

// NewCellularHandler creates a stopped cellular handler
func NewCellularHandler(opts Options) *CellularHandler {
	return &CellularHandler{base: newBase("cellular", model.ProtocolCellular, cellularDeviceTypes, opts)}
}

type cellIndicator struct {
	name   string
	weight int
}

// cellIndicators evaluates the serving cell against the simulator heuristics
func cellIndicators(c *model.CellInfo) []cellIndicator {
	var out []cellIndicator
	rat := strings.ToUpper(c.RAT)
	prev := strings.ToUpper(c.PrevRAT)

	if rat == "GSM" && (prev == "LTE" || prev == "NR" || prev == "UMTS") {
		out = append(out, cellIndicator{"downgrade_2g", 35})
	}
	if (c.MCC == 1 && c.MNC == 1) || c.MCC == 999 {
		out = append(out, cellIndicator{"test_network", 30})
	}
	if c.CellID == 0 || c.CellID == 0xFFFF || c.CellID == 0xFFFFFFF {
		out = append(out, cellIndicator{"invalid_cell_id", 20})
	}
	if c.LACChanges >= RapidAreaChanges {
		out = append(out, cellIndicator{"rapid_area_change", 20})
	}
	if nullCiphers[strings.ToUpper(c.Ciphering)] {
		out = append(out, cellIndicator{"null_cipher", 40})
	}
	if c.Neighbors != nil && *c.Neighbors == 0 && rat != "" {
		out = append(out, cellIndicator{"no_neighbors", 10})
	}
	return out
}

// Process evaluates one serving-cell report
func (h *CellularHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	if !h.accept(obs) || obs.Cell == nil {
		return nil
	}
	c := obs.Cell
	found := cellIndicators(c)
	if len(found) == 0 {
		return nil
	}

	likelihood := 0
	indicators := make([]string, 0, len(found))
	var conditions []string
	downgrade := false
	for _, ind := range found {
		likelihood += ind.weight
		indicators = append(indicators, "cell:"+ind.name)
		switch ind.name {
		case "downgrade_2g":
			downgrade = true
			conditions = append(conditions, model.ConditionDowngrade)
		case "null_cipher":
			conditions = append(conditions, model.ConditionNullCipher)
		}
	}

	dt := model.DeviceTypeCellSiteSimulator
	description := "Serving cell shows cell-site simulator traits"
	if downgrade || (strings.EqualFold(c.RAT, "GSM") && nullCiphers[strings.ToUpper(c.Ciphering)]) {
		dt = model.DeviceTypeFakeBaseStation2G
		description = "2G base station forcing a downgrade or unencrypted link"
	}

	cls := candidate(dt, qualityFor(len(found)), min(likelihood, 95), description, indicators...)
	key := fmt.Sprintf("%d-%d-%d-%d", c.MCC, c.MNC, c.LAC, c.CellID)
	oc := observationContext{
		sightings:  h.sight(key, obs.Timestamp, FollowingWindow),
		conditions: conditions,
	}
	return h.emit(obs, []model.ClassificationResult{cls}, oc)
}
