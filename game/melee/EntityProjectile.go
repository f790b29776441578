package melee

import (
	"github.com/bytearena/ecs"

	"github.com/gobots/gobots/common/utils/vector"
)

func (game MeleeGame) CastProjectile(data interface{}) *Projectile {
	return data.(*Projectile)
}

type Projectile struct{}

// NewEntityProjectile spawns a shot just outside the shooter body, along
// the cannon aim (heading plus cannon angle), at the shot speed.
func (game *MeleeGame) NewEntityProjectile(owner int, body *PhysicalBody, weapon *Weapon) *ecs.Entity {
	specs := game.specs

	aim := vector.MakeVector2FromAngle(body.GetOrientation() + weapon.GetCannon())

	return game.manager.NewEntity().
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position: body.GetPosition().Add(aim.MultScalar(specs.Radius * 1.1)),
			velocity: aim.MultScalar(specs.ShotSpeed),
		}).
		AddComponent(game.projectileComponent, &Projectile{}).
		AddComponent(game.ownedComponent, &Owned{owner: owner})
}
