package geometry

import "math"

// Units of the engine's internal system: lengths in mm, times in ns,
// energies in MeV. Multiply a value by its unit to convert it in, divide to
// convert it out.
const (
	MM = 1.0
	CM = 10 * MM
	M  = 1000 * MM
	UM = 1e-3 * MM

	NS = 1.0
	S  = 1e9 * NS

	MeV = 1.0
	KeV = 1e-3 * MeV

	Bq = 1 / S

	Deg = math.Pi / 180
)
