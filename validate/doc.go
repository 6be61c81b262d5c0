// Package validate provides a sanity harness that cross-checks the
// delta package's incrementally-maintained orbit matrix against the
// scratch package's from-scratch recount, the correctness law the whole
// system exists to make cheap to verify continuously rather than only at
// a single point in time.
package validate
