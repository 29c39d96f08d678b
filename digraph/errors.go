package digraph

import "errors"

// Sentinel errors for structural failures. Query-time absences (unknown
// symbol lookups) are not among them — those return a zero value and an
// ok=false flag rather than an error; see Index, Name, Adj, Reachable, and
// Ancestors, all of which treat an unknown symbol as "no" rather than a
// failure.
var (
	// ErrCycleDetected is returned by CheckForCycles when the graph
	// contains a directed cycle of any length, including a self-loop.
	ErrCycleDetected = errors.New("digraph: cycle detected")
)

// IsCycleDetectedErr returns true if err is or wraps ErrCycleDetected.
func IsCycleDetectedErr(err error) bool {
	return errors.Is(err, ErrCycleDetected)
}
