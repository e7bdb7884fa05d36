package core

import "errors"

// ErrMissingSurface is returned when a game has nowhere to draw, such as a
// terminal too small for its playfield or an SSH session without a PTY.
// The game is disabled; it is never fatal for the rest of the arcade.
var ErrMissingSurface = errors.New("core: missing render surface")
