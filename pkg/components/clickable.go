package components

// ClickableComponent marks an entity as responding to pointer-down events
// inside the rectangle anchored at the entity's position.
type ClickableComponent struct {
	Width     float64
	Height    float64
	IsEnabled bool
}
