package orbit

// GraphletID returns the graphlet index in [0,NumGraphlets) of a connected
// mask on k labelled vertices, or -1 if mask is disconnected or k is
// outside [2,5].
// Complexity: O(1).
func GraphletID(k int, mask uint16) int {
	t, ok := tableFor(k)
	if !ok {
		return -1
	}
	gid, ok := t[mask]
	if !ok {
		return -1
	}
	return gid
}

// OrbitID returns the orbit index in [0,NumOrbits) of vertex focus within
// a connected mask on k labelled vertices, or -1 if mask is disconnected,
// focus is out of range, or k is outside [2,5].
// Complexity: O(1).
func OrbitID(k int, mask uint16, focus int) int {
	if focus < 0 || focus >= k {
		return -1
	}
	ov, ok := orbitTableFor(k, mask)
	if !ok {
		return -1
	}
	return ov[focus]
}

// IsConnected reports whether mask, interpreted as an induced subgraph on
// k labelled vertices, is connected.
// Complexity: O(k^2).
func IsConnected(k int, mask uint16) bool {
	if k < 2 || k > maxK {
		return false
	}
	return isConnectedMask(k, mask)
}

// OrbitSize returns the number of vertex-positions within orbit o's
// graphlet that belong to o, or 0 if o is out of range.
func OrbitSize(o int) int {
	if o < 0 || o >= len(orbitSizeGlobal) {
		return 0
	}
	return orbitSizeGlobal[o]
}

// GraphletOfOrbit returns the graphlet id orbit o belongs to, or -1 if o
// is out of range.
func GraphletOfOrbit(o int) int {
	if o < 0 || o >= len(orbitGraphletGlobal) {
		return -1
	}
	return orbitGraphletGlobal[o]
}

// MaskFromEdges builds the k-vertex edge mask by calling has(a,b) for
// every unordered pair a<b in [0,k). has must report edge membership
// between the caller's chosen vertex labelling.
// Complexity: O(k^2) calls to has.
func MaskFromEdges(k int, has func(a, b int) bool) uint16 {
	var mask uint16
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if has(a, b) {
				mask |= 1 << uint(pairIndex(a, b, k))
			}
		}
	}
	return mask
}

func tableFor(k int) (map[uint16]int, bool) {
	if k < 2 || k > maxK {
		return nil, false
	}
	return graphletOf[k], true
}

func orbitTableFor(k int, mask uint16) ([]int, bool) {
	if k < 2 || k > maxK {
		return nil, false
	}
	ov, ok := orbitOf[k][mask]
	return ov, ok
}
