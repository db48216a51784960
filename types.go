package pathdoc

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseSeverity maps "ignore", "warn" and "error" onto a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "ignore", "":
		return Ignore, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	}
	return Ignore, false
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	// OnDuplicateKey selects what happens when an object repeats a key. With
	// Ignore and Warn the last value wins and the key keeps its first position.
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options. The zero value parses like JSON.parse.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 disables the nesting limit.
	MaxBytes   int64 // 0 disables the input size limit.
	// IssueSink receives non-fatal issues such as duplicate keys in Warn mode.
	IssueSink func(Issue)
	FailFast  bool
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
