package parameter

import "time"

// Grid dimensions (discrete cells)
const (
	GridWidth  = 50
	GridHeight = 30
)

// CellSize is the number of continuous sub-cell units per grid cell.
// Movement integrates in continuous units; the grid position is always
// derived by dividing by this and flooring.
const CellSize = 24.0

// Snake movement
const (
	// InitialSpeed is in continuous units per millisecond
	InitialSpeed = 0.1

	// SpeedIncrement is added to speed every SpeedRampInterval
	SpeedIncrement    = 0.02
	SpeedRampInterval = 5000 * time.Millisecond
)

// Snake growth and scoring
const (
	InitialSnakeLength = 5
	GrowthPerFood      = 3
)

// Direction queue bound. Two pending entries cover any legal turn
// sequence between cell crossings; further input while full is dropped.
const DirectionQueueCapacity = 2

// Food spawn and expiry
const (
	FoodSpawnInterval = 4000 * time.Millisecond

	// Lifetime is uniform in [FoodLifetimeMin, FoodLifetimeMax)
	FoodLifetimeMin = 10000 * time.Millisecond
	FoodLifetimeMax = 30000 * time.Millisecond
)
