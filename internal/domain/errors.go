package domain

import "fmt"

// ErrorKind classifies unrecoverable configuration problems
type ErrorKind string

const (
	// KindEmptyFile means the input file held no lines at all
	KindEmptyFile ErrorKind = "empty-file"
	// KindUndefinedGroups means the contrasts file referenced groups
	// that the groups file never defined
	KindUndefinedGroups ErrorKind = "undefined-groups"
)

// ConfigError is an unrecoverable configuration problem. The parsing
// core returns it instead of exiting so the calling layer decides
// whether to escalate to a process exit.
type ConfigError struct {
	File   string
	Kind   ErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.File, e.Kind, e.Detail)
}
