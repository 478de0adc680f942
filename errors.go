package games

import "errors"

var (
	// ErrInvalidSize is returned when a canvas or frame size is not positive
	// or too large.
	ErrInvalidSize = errors.New("games: invalid size")

	// ErrInvalidSupersample is returned for a supersampling factor outside
	// [1, MaxSupersample].
	ErrInvalidSupersample = errors.New("games: invalid supersample factor")

	// ErrInvalidFPS is returned for a frame rate whose frame interval is not
	// a positive time.Duration.
	ErrInvalidFPS = errors.New("games: invalid frame rate")

	// ErrUnknownColor is returned by ParseColor for a name that is neither
	// in the palette nor a hex triple.
	ErrUnknownColor = errors.New("games: unknown color")
)
