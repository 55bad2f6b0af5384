package ephem

import (
	"fmt"
	"math"
)

const (
	keplerTolerance = 1e-12
	keplerMaxIter   = 30
)

// solveKepler solves E - e*sin(E) = M for the eccentric anomaly E by
// Newton-Raphson, iterating to tolerance under a bounded iteration cap
// rather than a blind fixed count, so degenerate high-eccentricity input
// fails loudly instead of returning a half-converged anomaly.
func solveKepler(m, e float64) (float64, error) {
	if math.IsNaN(m) || math.IsNaN(e) || e < 0 || e >= 1 {
		return 0, fmt.Errorf("%w: kepler solve with M=%g e=%g", ErrData, m, e)
	}
	ecc := m
	for i := 0; i < keplerMaxIter; i++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < keplerTolerance {
			return ecc, nil
		}
	}
	return 0, fmt.Errorf("%w: kepler iteration did not converge for M=%g e=%g", ErrCalculation, m, e)
}
