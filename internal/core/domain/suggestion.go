package domain

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type Suggestion struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}
