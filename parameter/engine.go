package parameter

import "time"

// Frame loop timing
const (
	// FrameInterval is the render/update tick interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// FPSSampleWindow is the minimum accumulated frame time before the
	// smoothed FPS statistic is recomputed. Advisory only; simulation
	// always uses the raw per-frame delta.
	FPSSampleWindow = 100 * time.Millisecond
)
