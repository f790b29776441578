package melee

import "github.com/gobots/gobots/common/utils/trigo"

func (game MeleeGame) CastWeapon(data interface{}) *Weapon {
	return data.(*Weapon)
}

type Weapon struct {
	cannon  float64 // cannon angle in radians, relative to the bot heading
	scanArc float64 // scan cone width in radians
	shots   int     // number of shots fired this round
}

func NewWeapon(scanArc float64) *Weapon {
	return &Weapon{
		scanArc: scanArc,
	}
}

func (weapon Weapon) GetCannon() float64 {
	return weapon.cannon
}

func (weapon *Weapon) SetCannon(angle float64) {
	weapon.cannon = trigo.FullCircleAngleToSignedHalfCircleAngle(angle)
}

func (weapon Weapon) GetScanArc() float64 {
	return weapon.scanArc
}

func (weapon *Weapon) SetScanArc(arc float64) {
	weapon.scanArc = arc
}

func (weapon Weapon) GetShots() int {
	return weapon.shots
}

func (weapon *Weapon) IncrementShots() {
	weapon.shots++
}
