package dump

// Dump phase constants
const (
	PhaseFlattening = "flattening"
	PhaseWriting    = "writing"
	PhaseComplete   = "complete"
)
