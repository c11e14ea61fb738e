package render

import "github.com/lixenwraith/contagion/core"

// UI palette; agent colors come from component markers
var (
	RgbBackground   = core.RGB{R: 10, G: 12, B: 16}
	RgbArenaEdge    = core.RGB{R: 60, G: 64, B: 72}
	RgbStatusText   = core.RGB{R: 230, G: 230, B: 230}
	RgbStatusBg     = core.RGB{R: 30, G: 34, B: 40}
	RgbModeRunBg    = core.RGB{R: 40, G: 110, B: 60}
	RgbModePausedBg = core.RGB{R: 150, G: 100, B: 20}
)
