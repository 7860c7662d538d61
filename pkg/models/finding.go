package models

// Finding is a warning raised while auditing a region. Findings are never
// fatal and are never mutated once created.
type Finding struct {
	Region  string `json:"region"`
	Message string `json:"message"`
}

func NewFinding(region, message string) Finding {
	return Finding{Region: region, Message: message}
}

func (f Finding) String() string {
	return f.Message
}

// FreshnessRow is one line of the quickstart freshness report.
type FreshnessRow struct {
	Region          string `json:"region"`
	Release         string `json:"release"`
	Arch            string `json:"arch"`
	Slot            int    `json:"slot"`
	ObservedID      string `json:"observed_id"`
	AuthoritativeID string `json:"authoritative_id"`
	NeedsUpdate     bool   `json:"needs_update"`
}
