package melee

func (game MeleeGame) CastPlayer(data interface{}) *Player {
	return data.(*Player)
}

type Player struct {
	index int
	name  string
	kills int
}

func NewPlayer(index int, name string) *Player {
	return &Player{
		index: index,
		name:  name,
	}
}

func (player Player) GetIndex() int {
	return player.index
}

func (player Player) GetName() string {
	return player.name
}

func (player Player) GetKills() int {
	return player.kills
}

func (player *Player) AddKill() {
	player.kills++
}
