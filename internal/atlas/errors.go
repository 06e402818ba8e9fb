package atlas

import "errors"

// Build errors. All of them are fatal: no partial atlas is ever written.
var (
	ErrInputNotFound = errors.New("input image not found")
	ErrInputDecode   = errors.New("invalid image format")
	ErrPackFailed    = errors.New("sprites do not fit into the maximum sheet size")
	ErrOutputWrite   = errors.New("writing output failed")
)
