package melee

func (game MeleeGame) CastOwned(data interface{}) *Owned {
	return data.(*Owned)
}

type Owned struct {
	owner int // index of the bot owning this entity
}

func (owned Owned) GetOwner() int {
	return owned.owner
}
