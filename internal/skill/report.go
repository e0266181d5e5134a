package skill

import "fmt"

// Severity classifies a feedback signal for display purposes.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

// String returns the lowercase label for the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Signal is one piece of user-visible feedback produced by a domain
// operation. The core never prints; the CLI layer renders signals.
type Signal struct {
	Severity Severity
	Message  string
}

// Report collects the signals emitted by a single operation. Operations
// that touch many records (load, for example) can emit several.
type Report struct {
	Signals []Signal
}

func (r *Report) add(sev Severity, format string, args ...any) {
	r.Signals = append(r.Signals, Signal{Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// Infof appends an informational signal.
func (r *Report) Infof(format string, args ...any) { r.add(Info, format, args...) }

// Successf appends a success signal.
func (r *Report) Successf(format string, args ...any) { r.add(Success, format, args...) }

// Warnf appends a warning signal.
func (r *Report) Warnf(format string, args ...any) { r.add(Warning, format, args...) }

// Errorf appends an error signal.
func (r *Report) Errorf(format string, args ...any) { r.add(Error, format, args...) }

// HasWarnings reports whether any signal carries Warning severity.
func (r *Report) HasWarnings() bool {
	for _, s := range r.Signals {
		if s.Severity == Warning {
			return true
		}
	}
	return false
}

// HasErrors reports whether any signal carries Error severity.
func (r *Report) HasErrors() bool {
	for _, s := range r.Signals {
		if s.Severity == Error {
			return true
		}
	}
	return false
}
