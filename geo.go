package corridors

import (
	"math"
)

const (
	kEarthRadiusMeters = 6371000.0
	kMetersPerNM       = 1852.0
)

// DistTo returns the great-circle distance to another coordinate, in meters
// (haversine on a spherical earth).
func (c Coordinate) DistTo(o Coordinate) float64 {
	lat1, long1 := rad(c.Lat), rad(c.Long)
	lat2, long2 := rad(o.Lat), rad(o.Long)

	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLong := math.Sin((long2 - long1) / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLong*sinLong

	return 2 * kEarthRadiusMeters * math.Asin(math.Sqrt(a))
}

// BearingTowards returns the initial great-circle bearing to another
// coordinate, in degrees [0,360).
func (c Coordinate) BearingTowards(o Coordinate) float64 {
	lat1, long1 := rad(c.Lat), rad(c.Long)
	lat2, long2 := rad(o.Lat), rad(o.Long)
	dLong := long2 - long1

	y := math.Sin(dLong) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLong)

	return norm360(deg(math.Atan2(y, x)))
}

// Project returns the destination coordinate after travelling distMeters
// along the given initial bearing. Altitude is copied through.
func (c Coordinate) Project(bearingDeg, distMeters float64) Coordinate {
	lat1, long1 := rad(c.Lat), rad(c.Long)
	brng := rad(bearingDeg)
	d := distMeters / kEarthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	long2 := long1 + math.Atan2(math.Sin(brng)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return Coordinate{Long: deg(long2), Lat: deg(lat2), Alt: c.Alt}
}

// bearingDelta returns the smallest signed angle from b1 to b2, in (-180,180].
func bearingDelta(b1, b2 float64) float64 {
	d := math.Mod(b2-b1, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func norm360(b float64) float64 {
	b = math.Mod(b, 360)
	if b < 0 {
		b += 360
	}
	return b
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }
