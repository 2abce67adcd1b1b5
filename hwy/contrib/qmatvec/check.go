package qmatvec

// assertShape panics with the *ShapeError of a violated precondition.
// Callers guard it with debugChecks so release builds carry no checks.
func assertShape(op string, layout Layout, m []int8, rows, cols int, v, result []int16) {
	if err := validate(op, layout, m, rows, cols, v, result); err != nil {
		panic(err)
	}
}
