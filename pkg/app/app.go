// Package app defines the runtime contract between cmd/* entrypoints and the
// processes they start, so main stays free of wiring.
package app

// Runner represents a runnable application component. Run blocks until the
// component shuts down.
type Runner interface {
	Run() error
}
