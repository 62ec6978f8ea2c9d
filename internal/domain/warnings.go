package domain

// WarningSink receives non-fatal diagnostics from the readers. Malformed
// lines are reported here and skipped; parsing always continues. The CLI
// injects a colored stderr implementation.
type WarningSink interface {
	Warnf(format string, args ...interface{})
}

// NopSink discards all warnings. Used as the default so the readers can
// be called as a library without any CLI wiring.
type NopSink struct{}

// Warnf implements WarningSink
func (NopSink) Warnf(format string, args ...interface{}) {}
