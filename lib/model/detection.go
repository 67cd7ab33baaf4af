package model

import "time"

// Detection is one scored observation
type Detection struct {
	ID             string               `json:"id"`
	ObservationID  string               `json:"observation_id,omitempty"`
	Protocol       Protocol             `json:"protocol"`
	Handler        string               `json:"handler"`
	Identifier     string               `json:"identifier,omitempty"`
	MAC            string               `json:"mac,omitempty"`
	RSSI           int                  `json:"rssi,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
	Location       *Location            `json:"location,omitempty"`
	DeviceType     DeviceType           `json:"device_type"`
	Classification ClassificationResult `json:"classification"`
	Input          ThreatInput          `json:"input"`
	Threat         ThreatResult         `json:"threat"`
}

// Incident is a group of detections judged to be the same real-world event
type Incident struct {
	ID         string      `json:"id"`
	Detections []Detection `json:"detections"`
	Start      time.Time   `json:"start"`
	End        time.Time   `json:"end"`
	Location   *Location   `json:"location,omitempty"`
	Protocols  []Protocol  `json:"protocols"`
	PeakScore  int         `json:"peak_score"`
}

// Last returns the most recent member of the incident
func (i *Incident) Last() Detection {
	return i.Detections[len(i.Detections)-1]
}

// AggregateThreatResult is the overall assessment over a time window
type AggregateThreatResult struct {
	Severity            Severity   `json:"severity"`
	Score               int        `json:"score"`
	HighestScore        int        `json:"highest_score"`
	DetectionCount      int        `json:"detection_count"`
	IncidentCount       int        `json:"incident_count"`
	Incidents           []Incident `json:"incidents,omitempty"`
	CorrelatedProtocols []Protocol `json:"correlated_protocols"`
	CrossProtocol       bool       `json:"cross_protocol"`
	RecurringPattern    bool       `json:"recurring_pattern"`
	RecentHighSeverity  bool       `json:"recent_high_severity"`
	Reasoning           string     `json:"reasoning"`
}
