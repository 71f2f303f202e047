package core

// Color is the semantic colour of a screen cell. The platform layer maps
// each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFloor
	ColorWall
	ColorTemporaryWall
	ColorDoor
	ColorSign
	ColorSpiny
	ColorDisabledSpiny
	ColorPlayer
	ColorCorpse
	ColorLabel
	ColorHUD
	ColorMessage
)
