package parameter

// Sphere body defaults used by the demo and physics tests

// Sphere Body
const (
	// SphereRadius is the collision radius of the kart body
	SphereRadius = 0.5

	// SphereDrag is the linear velocity damping per second
	SphereDrag = 1.0

	// SphereMaxSpeed caps body speed, 0 disables the cap
	SphereMaxSpeed = 120.0

	// SphereRestitution is the bounce fraction of velocity into a surface
	SphereRestitution = 0.0

	// SphereContactSkin is the extra probe length below the sphere for ground contact
	SphereContactSkin = 0.05
)

// Surface Layers
const (
	// LayerGround is the mask bit of drivable surfaces
	LayerGround uint32 = 1 << 0

	// LayerDecor is the mask bit of non-drivable overlays the ground probe ignores
	LayerDecor uint32 = 1 << 1
)
