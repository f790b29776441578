package melee

import (
	"github.com/gobots/gobots/common/utils/number"
	"github.com/gobots/gobots/common/utils/vector"
)

// BotFunc is a bot decision function. It is invoked once per tick while
// the bot is alive, with a fresh Handler each time.
type BotFunc func(handler *Handler)

// Handler is the control surface handed to a decision function. Reads
// return the state committed by the previous tick; writes buffer intents
// consumed by the coming tick. Holding a Handler beyond its tick is not
// supported.
type Handler struct {
	game      *MeleeGame
	index     int
	physical  *PhysicalBody
	health    *Health
	thermal   *Thermal
	weapon    *Weapon
	intents   *Intents
	lifecycle *Lifecycle
}

func (game *MeleeGame) NewHandler(index int) *Handler {
	qr := game.bot(index)

	return &Handler{
		game:      game,
		index:     index,
		physical:  game.CastPhysicalBody(qr.Components[game.physicalBodyComponent]),
		health:    game.CastHealth(qr.Components[game.healthComponent]),
		thermal:   game.CastThermal(qr.Components[game.thermalComponent]),
		weapon:    game.CastWeapon(qr.Components[game.weaponComponent]),
		intents:   game.CastIntents(qr.Components[game.intentsComponent]),
		lifecycle: game.CastLifecycle(qr.Components[game.lifecycleComponent]),
	}
}

func (handler *Handler) GetIndex() int {
	return handler.index
}

func (handler *Handler) GetTick() int {
	return handler.game.ticknum
}

func (handler *Handler) GetSpecs() Specs {
	return handler.game.specs
}

func (handler *Handler) IsAlive() bool {
	return handler.lifecycle.IsAlive()
}

func (handler *Handler) GetAliveCount() int {
	return handler.game.AliveCount()
}

func (handler *Handler) GetPosition() vector.Vector2 {
	return handler.physical.GetPosition()
}

func (handler *Handler) GetVelocity() vector.Vector2 {
	return handler.physical.GetVelocity()
}

func (handler *Handler) GetSpeed() float64 {
	return handler.physical.GetVelocity().Mag()
}

// GetDirection returns the heading angle, in [-Pi, Pi].
func (handler *Handler) GetDirection() float64 {
	return handler.physical.GetOrientation()
}

func (handler *Handler) GetAngularVelocity() float64 {
	return handler.physical.GetAngularVelocity()
}

// GetCannon returns the cannon angle relative to the heading.
func (handler *Handler) GetCannon() float64 {
	return handler.weapon.GetCannon()
}

func (handler *Handler) GetScanArc() float64 {
	return handler.weapon.GetScanArc()
}

func (handler *Handler) GetHealth() float64 {
	return handler.health.GetLife()
}

func (handler *Handler) GetTemperature() float64 {
	return handler.thermal.GetTemperature()
}

// Scan reports the nearest alive opponent inside the scan cone as seen at
// the end of the previous tick: its distance and index. The distance never
// exceeds the vision range, even for a body clipping the range edge; when
// nothing is in view it returns the vision range and -1.
func (handler *Handler) Scan() (float64, int) {
	visionRange := handler.game.specs.VisionRange

	index, dist := handler.game.scan(handler.index)
	if index == -1 {
		return visionRange, -1
	}

	if dist > visionRange {
		dist = visionRange
	}

	return dist, index
}

// Accelerate asks for a thrust along the heading next tick; negative
// values brake or reverse. Clamped to MaxAcceleration in magnitude; the
// latest call of the tick wins.
func (handler *Handler) Accelerate(acceleration float64) {
	if !handler.lifecycle.IsAlive() {
		return
	}

	handler.intents.acceleration = number.MinAbs(acceleration, handler.game.specs.MaxAcceleration)
}

// Turn asks for a change of angular velocity next tick, clamped to
// MaxTurnRate in magnitude; the latest call of the tick wins.
func (handler *Handler) Turn(turn float64) {
	if !handler.lifecycle.IsAlive() {
		return
	}

	handler.intents.turn = number.MinAbs(turn, handler.game.specs.MaxTurnRate)
}

// RotateCannon asks for a cannon rotation next tick, clamped to
// MaxCannonTurnRate in magnitude; the latest call of the tick wins.
func (handler *Handler) RotateCannon(rotation float64) {
	if !handler.lifecycle.IsAlive() {
		return
	}

	handler.intents.cannon = number.MinAbs(rotation, handler.game.specs.MaxCannonTurnRate)
}

// SetScanArc asks for a new scan cone width, clamped to
// [MinScanArc, MaxScanArc]; the latest call of the tick wins.
func (handler *Handler) SetScanArc(arc float64) {
	if !handler.lifecycle.IsAlive() {
		return
	}

	specs := handler.game.specs
	handler.intents.arc = number.Clamp(arc, specs.MinScanArc, specs.MaxScanArc)
	handler.intents.hasArc = true
}

// Shoot asks to fire one shot next tick. Calling it several times within
// the same tick still fires a single shot; on a dead bot it does nothing.
func (handler *Handler) Shoot() {
	if !handler.lifecycle.IsAlive() {
		return
	}

	handler.intents.fire = true
}
