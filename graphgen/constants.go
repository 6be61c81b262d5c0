// Package graphgen provides deterministic fixture generators used by the
// validate package's consistency scenarios.
package graphgen

// Method name constants, used to prefix errors with the constructor name.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// MinCycleNodes is the smallest meaningful size for a cycle C_n.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a path P_n.
const MinPathNodes = 2

// MinCompleteNodes is the smallest meaningful size for a complete graph K_n.
const MinCompleteNodes = 1

// MinProbability is the lower bound for RandomSparse's edge probability, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for RandomSparse's edge probability, inclusive.
const MaxProbability = 1.0
