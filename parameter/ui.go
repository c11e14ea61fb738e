package parameter

// Terminal rendering
const (
	AgentGlyph     = '•'
	CrowdGlyph     = '●' // Cell holding more than one agent
	StatusBarRows  = 1
	PausedDimScale = 0.5
)

// ViewMargin is the fraction of the arena side shown beyond each edge, so stragglers stay visible
const ViewMargin = 0.1

// RunIDDisplayLen truncates the run id in the status bar
const RunIDDisplayLen = 8
