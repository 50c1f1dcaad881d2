package sim

// Input is the player input state sampled once per tick. ShowMap and
// OpenMenu are passed through to the UI layer untouched; they never affect
// simulation state.
type Input struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
	ShowMap     bool
	OpenMenu    bool
}

// turn returns the rotation direction as -1, 0 or 1.
func (in Input) turn() float64 {
	t := 0.0
	if in.RotateRight {
		t += 1
	}
	if in.RotateLeft {
		t -= 1
	}
	return t
}
