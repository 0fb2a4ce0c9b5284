package kart

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/vmath"
)

const (
	groundRayLift = parameter.GroundRayLift
	groundRayNear = parameter.GroundRayNear
	groundRayFar  = parameter.GroundRayFar
)

// animate writes pose targets into the rig
func (c *Controller) animate(steer, dt float64) {
	if !c.drifting {
		e := c.rig.Model.LocalEuler()
		s := c.cfg.DriftVisualSmoothing
		c.rig.Model.SetLocalEuler(mgl64.Vec3{
			vmath.Lerp(e[0], 0, s),
			vmath.Lerp(e[1], parameter.ModelBaseYaw+steer*parameter.WheelSteerYaw, s),
			e[2],
		})
		if c.pivotTween.Active() {
			c.setPivotYaw(c.pivotTween.Advance(dt))
		}
	} else {
		visual := c.visualControl(steer)
		target := visual * parameter.DriftPivotMaxYaw * float64(c.driftDirection)
		current := c.rig.Pivot.LocalEuler()[1]
		c.setPivotYaw(vmath.LerpAngle(current, target, dt*c.cfg.DriftRotationSpeed))
	}

	roll := c.body.Velocity().Len() / 2

	front := c.rig.FrontWheels.LocalEuler()
	c.rig.FrontWheels.SetLocalEuler(mgl64.Vec3{
		0,
		steer * parameter.WheelSteerYaw,
		vmath.Repeat(front[2]+roll, 360),
	})

	back := c.rig.BackWheels.LocalEuler()
	back[2] = vmath.Repeat(back[2]+roll, 360)
	c.rig.BackWheels.SetLocalEuler(back)

	c.rig.SteeringWheel.SetLocalEuler(mgl64.Vec3{
		parameter.SteeringWheelPitch,
		parameter.SteeringWheelYaw,
		steer * parameter.SteeringWheelRoll,
	})
}

// visualControl remaps steer into [0.5, 2], mirrored by drift direction
func (c *Controller) visualControl(steer float64) float64 {
	if c.driftDirection >= 0 {
		return vmath.Remap(steer, -1, 1, 0.5, 2)
	}
	return vmath.Remap(steer, -1, 1, 2, 0.5)
}

func (c *Controller) setPivotYaw(yaw float64) {
	c.rig.Pivot.SetLocalEuler(mgl64.Vec3{0, yaw, 0})
}

// PivotYaw returns the current model pivot yaw
func (c *Controller) PivotYaw() float64 {
	return c.rig.Pivot.LocalEuler()[1]
}
