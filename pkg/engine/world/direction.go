package world

// Direction represents one of the eight compass directions around a cell
type Direction int

// Direction constants, listed in neighbour scan order (top row, middle row, bottom row)
const (
	NorthWest Direction = iota
	North
	NorthEast
	West
	East
	SouthWest
	South
	SouthEast
)

// AllDirections returns all eight directions in neighbour scan order
func AllDirections() []Direction {
	return []Direction{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case NorthWest:
		return "NorthWest"
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case West:
		return "West"
	case East:
		return "East"
	case SouthWest:
		return "SouthWest"
	case South:
		return "South"
	case SouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= NorthWest && d <= SouthEast
}

// IsDiagonal returns true for directions that only share a corner with the cell
func (d Direction) IsDiagonal() bool {
	switch d {
	case NorthWest, NorthEast, SouthWest, SouthEast:
		return true
	default:
		return false
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return SouthEast - d
}

// Delta returns the column and row offsets for this direction.
// Rows grow downwards, so North is a negative row offset.
func (d Direction) Delta() (colDelta, rowDelta int) {
	switch d {
	case NorthWest:
		return -1, -1
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case West:
		return -1, 0
	case East:
		return 1, 0
	case SouthWest:
		return -1, 1
	case South:
		return 0, 1
	case SouthEast:
		return 1, 1
	default:
		return 0, 0
	}
}
