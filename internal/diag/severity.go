package diag

// Severity orders diagnostics inside a Bag; higher sorts first.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Severity is the level a diagnostic with code c is reported at.
// The *Info codes of each range are informational; every other code stops
// the front end and is an error.
func (c Code) Severity() Severity {
	switch c {
	case LexInfo, SynInfo:
		return SevInfo
	default:
		return SevError
	}
}
