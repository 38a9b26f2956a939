package scan

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error.
	SeverityError Severity = "error"
)

// Diagnostic codes produced while discovering packages.
const (
	CodeInfoDirMissing   = "packageinfo_missing"
	CodeInfoDirEmpty     = "packageinfo_empty"
	CodeInfoUnreadable   = "packageinfo_unreadable"
	CodeDuplicateVersion = "duplicate_version"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic is a structured, non-fatal discovery problem returned to
	// callers alongside the results so the CLI can render it.
	Diagnostic struct {
		Severity Severity
		// Code is a machine-readable identifier, e.g. "packageinfo_missing".
		Code    string
		Message string
		// Path is the file or directory the diagnostic is about.
		Path  string
		Cause error
	}
)

func (d Diagnostic) Error() string {
	if d.Cause != nil {
		return d.Message + ": " + d.Cause.Error()
	}
	return d.Message
}
