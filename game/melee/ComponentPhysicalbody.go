package melee

import (
	"github.com/gobots/gobots/common/utils/trigo"
	"github.com/gobots/gobots/common/utils/vector"
)

func (game MeleeGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

type PhysicalBody struct {
	position        vector.Vector2
	velocity        vector.Vector2 // expressed in units/tick
	orientation     float64        // heading angle in radians, in [-Pi, Pi]
	angularVelocity float64        // expressed in rad/tick
	radius          float64
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return p.position
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.position = v
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return p.velocity
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.velocity = v
	return p
}

func (p PhysicalBody) GetOrientation() float64 {
	return p.orientation
}

func (p *PhysicalBody) SetOrientation(angle float64) *PhysicalBody {
	p.orientation = trigo.FullCircleAngleToSignedHalfCircleAngle(angle)
	return p
}

func (p PhysicalBody) GetAngularVelocity() float64 {
	return p.angularVelocity
}

func (p *PhysicalBody) SetAngularVelocity(angularVelocity float64) *PhysicalBody {
	p.angularVelocity = angularVelocity
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}
