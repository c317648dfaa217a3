// Package config holds window constants and the yaml-backed gameplay
// tuning values.
package config

// Window and play-field dimensions. The logical field matches the window;
// Ebitengine scales it to the actual window size.
const (
	GameWindowWidth  = 600
	GameWindowHeight = 800

	GameTitle = "Catcher"
)
