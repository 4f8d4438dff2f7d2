package corridors

// A Gate is a 2-point reference line perpendicular to the local track
// bearing, centered on a track point, reaching one corridor distance out to
// each side.
type Gate struct {
	Name        string
	Left, Right Coordinate
}

// MakeGate builds the perpendicular line at center: left endpoint at
// bearing-90, right endpoint at bearing+90, each halfLenMeters out.
func MakeGate(name string, center Coordinate, bearingDeg, halfLenMeters float64) Gate {
	return Gate{
		Name:  name,
		Left:  center.Project(norm360(bearingDeg-90), halfLenMeters),
		Right: center.Project(norm360(bearingDeg+90), halfLenMeters),
	}
}
