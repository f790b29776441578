package melee

func (game MeleeGame) CastLifecycle(data interface{}) *Lifecycle {
	return data.(*Lifecycle)
}

type Lifecycle struct {
	alive     bool
	tickDeath int
	forfeited bool
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		alive:     true,
		tickDeath: -1,
	}
}

func (lc Lifecycle) IsAlive() bool {
	return lc.alive
}

func (lc Lifecycle) GetDeath() int {
	return lc.tickDeath
}

func (lc *Lifecycle) SetDead(tick int) {
	lc.alive = false
	lc.tickDeath = tick
}

func (lc Lifecycle) IsForfeited() bool {
	return lc.forfeited
}

func (lc *Lifecycle) SetForfeited() {
	lc.forfeited = true
}
