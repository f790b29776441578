package melee

// DeathEvent is emitted when a bot leaves the round, either destroyed or
// forfeited. Killer is the index of the last damager, or -1 when the death
// has no author (wall, overheat, forfeit).
type DeathEvent struct {
	Index   int
	Name    string
	Killer  int
	Tick    int
	Forfeit bool
}
