//go:build !qmvdebug

package qmatvec

const debugChecks = false
