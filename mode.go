package subspace

import (
	"fmt"
	"strconv"
)

// Mode selects the measure computed by Distance.
type Mode int

const (
	// Dist is the absolute sum of the entries of P1 - P2.
	Dist Mode = iota
	// Trace is trace(P1·P2) normalized by the dimension of the first subspace.
	Trace
	// Canonical is the mean first canonical weight of the two subspaces
	// projected into an observation space.
	Canonical
)

var modeNames = map[Mode]string{
	Dist:      "dist",
	Trace:     "trace",
	Canonical: "canonical",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode maps "dist", "trace" and "canonical" to their Mode.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}
