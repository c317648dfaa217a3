package components

// CollisionComponent defines an entity's axis-aligned bounding box.
// The box starts at the entity's position (top-left) and extends by
// Width x Height pixels.
type CollisionComponent struct {
	Width  float64
	Height float64
}
