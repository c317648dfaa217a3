package components

// ButtonComponent carries the label of a clickable on-screen control.
type ButtonComponent struct {
	Label string
}
