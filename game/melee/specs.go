package melee

import (
	"math"

	bettererrors "github.com/xtuc/better-errors"
)

// Specs carries every tunable of the simulation. A zero value is not
// usable; start from DefaultSpecs and override what you need.
type Specs struct {
	ArenaWidth  float64
	ArenaHeight float64
	Radius      float64
	VisionRange float64

	MaxHealth            float64
	NormalTemperature    float64
	MaxTemperature       float64
	DangerousTemperature float64
	OverheatDamage       float64 // damage per tick spent above DangerousTemperature
	CoolingRate          float64 // temperature shed per tick
	VelocityHeatRate     float64 // heat per unit of speed per tick

	MaxAcceleration    float64
	MaxTurnRate        float64
	MaxCannonTurnRate  float64
	MaxSpeed           float64
	MaxAngularVelocity float64
	Friction           float64
	AngularFriction    float64
	CorpseFriction     float64

	MinScanArc float64
	MaxScanArc float64

	ShotSpeed          float64
	ShotDamage         float64
	HeatPerShot        float64
	ShotCollisionHeat  float64
	ShotImpactVelocity float64 // fraction of the shot velocity transferred on impact
	ShotImpactSpin     float64 // spin per unit of shot speed imparted to corpses

	WallDamageRate      float64 // damage per unit of impact speed
	WallHeatRate        float64 // heat per unit of impact speed
	CollisionDamageRate float64 // damage per unit of closing speed
	CollisionHeatRate   float64 // heat per unit of closing speed

	// When true both bodies of a collision take damage; when false only
	// the faster one does.
	SymmetricCollisionDamage bool

	ExplosionRadius float64
	ExplosionForce  float64

	SpawnSeparation float64
	MaxTicks        int
}

func DefaultSpecs() Specs {
	return Specs{
		ArenaWidth:  640,
		ArenaHeight: 480,
		Radius:      10,
		VisionRange: 250,

		MaxHealth:            100,
		NormalTemperature:    0,
		MaxTemperature:       100,
		DangerousTemperature: 75,
		OverheatDamage:       0.6,
		CoolingRate:          0.3,
		VelocityHeatRate:     0.002,

		MaxAcceleration:    0.35,
		MaxTurnRate:        math.Pi / 25,
		MaxCannonTurnRate:  0.2,
		MaxSpeed:           8,
		MaxAngularVelocity: math.Pi / 8,
		Friction:           0.96,
		AngularFriction:    0.94,
		CorpseFriction:     0.8,

		MinScanArc: math.Pi / 16,
		MaxScanArc: 2 * math.Pi,

		ShotSpeed:          12,
		ShotDamage:         8,
		HeatPerShot:        3.2,
		ShotCollisionHeat:  5,
		ShotImpactVelocity: 0.2,
		ShotImpactSpin:     0.01,

		WallDamageRate:      0.25,
		WallHeatRate:        0.5,
		CollisionDamageRate: 0.3,
		CollisionHeatRate:   0.6,

		SymmetricCollisionDamage: true,

		ExplosionRadius: 60,
		ExplosionForce:  4,

		SpawnSeparation: 40,
		MaxTicks:        3000,
	}
}

// Validate reports every incoherent setting at once; it returns nil when
// the specs describe a playable arena.
func (specs Specs) Validate() error {
	berror := bettererrors.New("Invalid game specs")
	failed := false

	fail := func(reason string) {
		berror.With(bettererrors.New(reason))
		failed = true
	}

	if specs.Radius <= 0 {
		fail("Radius must be strictly positive")
	}

	if specs.ArenaWidth < specs.Radius*4 || specs.ArenaHeight < specs.Radius*4 {
		fail("Arena must be at least four bot radiuses wide and high")
	}

	if specs.MaxHealth <= 0 {
		fail("MaxHealth must be strictly positive")
	}

	if specs.MaxTemperature <= specs.NormalTemperature {
		fail("MaxTemperature must be above NormalTemperature")
	}

	if specs.DangerousTemperature <= specs.NormalTemperature || specs.DangerousTemperature > specs.MaxTemperature {
		fail("DangerousTemperature must lie between NormalTemperature and MaxTemperature")
	}

	if specs.MaxSpeed <= 0 {
		fail("MaxSpeed must be strictly positive")
	}

	if specs.MaxAcceleration <= 0 {
		fail("MaxAcceleration must be strictly positive")
	}

	if specs.Friction <= 0 || specs.Friction > 1 {
		fail("Friction must be in ]0, 1]")
	}

	if specs.AngularFriction <= 0 || specs.AngularFriction > 1 {
		fail("AngularFriction must be in ]0, 1]")
	}

	if specs.CorpseFriction <= 0 || specs.CorpseFriction > 1 {
		fail("CorpseFriction must be in ]0, 1]")
	}

	if specs.MinScanArc <= 0 || specs.MinScanArc > specs.MaxScanArc {
		fail("MinScanArc must be strictly positive and not exceed MaxScanArc")
	}

	if specs.MaxScanArc > 2*math.Pi {
		fail("MaxScanArc cannot exceed a full circle")
	}

	if specs.ShotSpeed <= specs.MaxSpeed {
		fail("ShotSpeed must exceed MaxSpeed")
	}

	if specs.VisionRange <= 0 {
		fail("VisionRange must be strictly positive")
	}

	if specs.MaxTicks <= 0 {
		fail("MaxTicks must be strictly positive")
	}

	if failed {
		return berror
	}

	return nil
}

func (specs Specs) WallCollisionDamage(impactSpeed float64) float64 {
	return impactSpeed * specs.WallDamageRate
}

func (specs Specs) WallCollisionHeat(impactSpeed float64) float64 {
	return impactSpeed * specs.WallHeatRate
}

func (specs Specs) BotCollisionDamage(closingSpeed float64) float64 {
	return closingSpeed * specs.CollisionDamageRate
}

func (specs Specs) BotCollisionHeat(closingSpeed float64) float64 {
	return closingSpeed * specs.CollisionHeatRate
}

func (specs Specs) MovementHeat(speed float64) float64 {
	return speed * specs.VelocityHeatRate
}

// ScoreFactor weights a round outcome by how many opponents went down;
// surviving alone a crowded round is worth more than a duel win.
func ScoreFactor(contestants int, alive int) float64 {
	if alive == 0 {
		return 0
	}

	return float64(contestants-alive) / float64(alive)
}
