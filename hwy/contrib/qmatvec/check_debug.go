//go:build qmvdebug

package qmatvec

// debugChecks enables precondition assertions in every kernel entry point.
const debugChecks = true
