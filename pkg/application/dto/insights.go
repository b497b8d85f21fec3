package dto

// Status summarizes the overall forecast posture for human readers
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusStable   Status = "stable"
	StatusCaution  Status = "caution"
	StatusCritical Status = "critical"
)

// Insights is the human-readable narration of a forecast. It derives
// sentences from an existing ForecastResult and never recomputes a number.
type Insights struct {
	Status            Status `json:"status"`
	Summary           string `json:"summary"`
	DemandSignal      string `json:"demandSignal"`
	VariabilitySignal string `json:"variabilitySignal"`
	BufferSignal      string `json:"bufferSignal"`
	ReorderSignal     string `json:"reorderSignal"`
	CostSignal        string `json:"costSignal"`
	Recommendation    string `json:"recommendation"`
}
