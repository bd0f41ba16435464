package common

// Base render resolution. The window scales this up; game logic never sees
// the real window size.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
