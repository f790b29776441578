package melee

import (
	"fmt"
	"math/rand"
)

func newTestGame(nbots int) *MeleeGame {
	game := NewMeleeGame(DefaultSpecs(), rand.New(rand.NewSource(1)))

	for i := 0; i < nbots; i++ {
		game.NewEntityBot(fmt.Sprintf("bot-%d", i))
	}

	return game
}

func newTestGameWithSpecs(specs Specs, nbots int) *MeleeGame {
	game := NewMeleeGame(specs, rand.New(rand.NewSource(1)))

	for i := 0; i < nbots; i++ {
		game.NewEntityBot(fmt.Sprintf("bot-%d", i))
	}

	return game
}

func testPhysical(game *MeleeGame, index int) *PhysicalBody {
	qr := game.bot(index)
	return game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
}

func testHealth(game *MeleeGame, index int) *Health {
	qr := game.bot(index)
	return game.CastHealth(qr.Components[game.healthComponent])
}

func testThermal(game *MeleeGame, index int) *Thermal {
	qr := game.bot(index)
	return game.CastThermal(qr.Components[game.thermalComponent])
}

func testWeapon(game *MeleeGame, index int) *Weapon {
	qr := game.bot(index)
	return game.CastWeapon(qr.Components[game.weaponComponent])
}
