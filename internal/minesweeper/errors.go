package minesweeper

import "errors"

// Errors returned by the engine. They are wrapped with context, so
// compare with errors.Is.
var (
	// ErrInvalidConfiguration is returned by NewBoard for a non-positive
	// size, a mine count outside [0, size*size] or a nil random source.
	ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")

	// ErrOutOfBounds is returned when a row or column lies outside [0, size).
	ErrOutOfBounds = errors.New("minesweeper: position out of bounds")

	// ErrNotInitialized is returned by Play and ExposeAll before Initialize.
	ErrNotInitialized = errors.New("minesweeper: board not initialized")
)
