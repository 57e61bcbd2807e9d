package led

// State is the LED animation snapshot for one frame.
//
// Only the field belonging to Mode varies; the others are zero.
type State struct {
	Mode          Mode
	BreathValue   float64
	SweepPosition float64
	PulseValue    float64
}

// EffectiveAlpha returns the overall brightness of the border in [0, 1].
// Sweep reports full brightness because its motion is carried by the
// dash position rather than the alpha.
func (s State) EffectiveAlpha() float64 {
	switch s.Mode {
	case ModeSolid, ModeSweep:
		return 1
	case ModeBreath:
		return s.BreathValue
	case ModePulse:
		return s.PulseValue
	default:
		return 0
	}
}
