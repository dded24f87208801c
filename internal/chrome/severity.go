package chrome

import "log"

// Severity classifies an alert's visual treatment. The set is closed
// and the zero value is SeverityInfo, so an unset severity renders as
// a plain notice.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityDanger
)

var severityNames = [...]string{"info", "success", "warning", "danger"}

// Severities returns the closed severity set in display order.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeveritySuccess, SeverityWarning, SeverityDanger}
}

func (s Severity) String() string {
	if s.known() {
		return severityNames[s]
	}
	return "info"
}

func (s Severity) known() bool { return int(s) < len(severityNames) }

// ParseSeverity maps a severity name to its value. The empty string is
// the default (info). ok is false for names outside the closed set.
func ParseSeverity(name string) (Severity, bool) {
	switch name {
	case "", "info":
		return SeverityInfo, true
	case "success":
		return SeveritySuccess, true
	case "warning":
		return SeverityWarning, true
	case "danger":
		return SeverityDanger, true
	}
	return SeverityInfo, false
}

// NormalizeSeverity parses name, logging and falling back to info when
// the name is outside the closed set. A banner must still appear even
// when the caller sends a severity the styling layer does not know.
func NormalizeSeverity(name string) Severity {
	s, ok := ParseSeverity(name)
	if !ok {
		log.Printf("severity=%q not recognized, using info", name)
	}
	return s
}
