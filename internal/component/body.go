package component

// BodyKind classifies how the physics stage treats a body.
type BodyKind uint8

const (
	BodyFixed     BodyKind = iota // immovable, collides
	BodyKinematic                 // position driven by game logic, collides
	BodyDynamic                   // integrated by physics
	BodySensor                    // reports overlap only
)

func (k BodyKind) String() string {
	switch k {
	case BodyFixed:
		return "fixed"
	case BodyKinematic:
		return "kinematic_position_based"
	case BodyDynamic:
		return "dynamic"
	case BodySensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// ShapeKind is the collider geometry.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Body is the physics classification of an entity.
// Pure data; the physics stage interprets it.
type Body struct {
	Kind        BodyKind
	Shape       ShapeKind
	HalfW       float64 // box only
	HalfH       float64 // box only
	Radius      float64 // circle only
	Restitution float64
	Responds    bool // participates in physical response; false for sensors
}

// BoxBody builds a box collider of the given kind.
func BoxBody(kind BodyKind, halfW, halfH, restitution float64) Body {
	return Body{
		Kind:        kind,
		Shape:       ShapeBox,
		HalfW:       halfW,
		HalfH:       halfH,
		Restitution: restitution,
		Responds:    kind != BodySensor,
	}
}

// CircleBody builds a dynamic circle collider.
func CircleBody(radius, restitution float64) Body {
	return Body{
		Kind:        BodyDynamic,
		Shape:       ShapeCircle,
		Radius:      radius,
		Restitution: restitution,
		Responds:    true,
	}
}
