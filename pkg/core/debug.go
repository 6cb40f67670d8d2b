package core

// DebugMode enables development-only diagnostics across the framework and
// the store bindings: shape checks on selector output, provider child
// checks, and the store replacement warning. Production builds turn it off
// to skip those checks entirely.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the framework.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
