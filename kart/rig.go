package kart

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a presentation-owned node the controller writes pose targets into
type Transform interface {
	LocalEuler() mgl64.Vec3 // Degrees (pitch, yaw, roll)
	SetLocalEuler(e mgl64.Vec3)
	SetRotation(q mgl64.Quat)
}

// Node is a plain Transform used by the demo and tests
type Node struct {
	Name     string
	Euler    mgl64.Vec3
	Rotation mgl64.Quat
}

// NewNode creates a named node with identity rotation
func NewNode(name string) *Node {
	return &Node{Name: name, Rotation: mgl64.QuatIdent()}
}

func (n *Node) LocalEuler() mgl64.Vec3 { return n.Euler }

func (n *Node) SetLocalEuler(e mgl64.Vec3) { n.Euler = e }

func (n *Node) SetRotation(q mgl64.Quat) { n.Rotation = q }

// Rig groups the visual sub-parts of a kart
type Rig struct {
	Model         Transform // Kart body mesh, base yaw 90
	Pivot         Transform // Model parent, yawed while drifting
	Normal        Transform // Aligned to the ground normal
	FrontWheels   Transform
	BackWheels    Transform
	SteeringWheel Transform
}

// NewNodeRig creates a rig backed by fresh Nodes
func NewNodeRig() Rig {
	return Rig{
		Model:         NewNode("model"),
		Pivot:         NewNode("pivot"),
		Normal:        NewNode("normal"),
		FrontWheels:   NewNode("front_wheels"),
		BackWheels:    NewNode("back_wheels"),
		SteeringWheel: NewNode("steering_wheel"),
	}
}

// Validate reports every missing part
func (r Rig) Validate() error {
	parts := []struct {
		name string
		t    Transform
	}{
		{"model", r.Model},
		{"pivot", r.Pivot},
		{"normal", r.Normal},
		{"front_wheels", r.FrontWheels},
		{"back_wheels", r.BackWheels},
		{"steering_wheel", r.SteeringWheel},
	}
	var errs []error
	for _, p := range parts {
		if isNil(p.t) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingTransform, p.name))
		}
	}
	return errors.Join(errs...)
}
