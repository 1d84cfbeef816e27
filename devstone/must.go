package devstone

// must panics on a construction error. DEVStone fixtures build a fixed,
// known-good topology; any error here is a bug in the fixture itself; not
// a condition a caller can sensibly recover from mid-build.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// must2 is must for constructors that also return a value, such as
// modeling.AddInPort.
func must2[T any](v T, err error) T {
	must(err)
	return v
}
