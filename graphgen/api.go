// api.go - public entry points for the graphgen package.
//
// Design contract:
//   - Each factory validates its parameters and returns a plain edge list
//     over node ids [0,n), lexicographically ascending by (min,max).
//   - No BuildGraph orchestrator: unlike a general-purpose builder, these
//     fixtures never carry weights, direction, or partitions, so there is
//     no configuration surface to resolve — the teacher's BuilderOption/
//     builderConfig machinery has no work left to do here.
//   - Determinism: same (n[, p, seed]) always yields the same edge list.
//   - Safety: never panics; returns sentinel errors from constructors.

package graphgen

// minMax returns (a,b) reordered so the first element is the smaller.
func minMax(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
