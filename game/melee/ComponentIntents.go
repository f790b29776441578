package melee

func (game MeleeGame) CastIntents(data interface{}) *Intents {
	return data.(*Intents)
}

// Intents is the per-tick command buffer filled by the Handler during the
// decision phase and consumed by the systems. For accelerate/turn/
// rotate-cannon/set-arc the latest call of the tick wins; fire is idempotent.
// Values are clamped by the Handler at storage time.
type Intents struct {
	acceleration float64
	turn         float64
	cannon       float64
	arc          float64
	hasArc       bool
	fire         bool
}

func (intents *Intents) Reset() {
	*intents = Intents{}
}
