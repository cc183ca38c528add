package engine

// Direction is one of the four cardinal movement directions
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Vector returns the unit axis vector for the direction. The grid's Y
// axis grows downward, matching screen rows.
func (d Direction) Vector() Vec {
	switch d {
	case DirUp:
		return Vec{X: 0, Y: -1}
	case DirRight:
		return Vec{X: 1, Y: 0}
	case DirDown:
		return Vec{X: 0, Y: 1}
	case DirLeft:
		return Vec{X: -1, Y: 0}
	}
	return Vec{}
}

// Opposite returns the exact reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	}
	return d
}

// String implements fmt.Stringer for log output
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "unknown"
}
