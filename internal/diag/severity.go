package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning marks advisory diagnostics.
	SevWarning Severity = iota
	// SevError marks diagnostics a downstream pass should treat as fatal.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
