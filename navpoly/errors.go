package navpoly

import (
	"errors"
	"fmt"
)

var (
	ErrCompile     = errors.New("navpoly: compile failed")
	ErrNoOutlines  = fmt.Errorf("%w: no outline with at least 3 points", ErrCompile)
	ErrHoleBridge  = fmt.Errorf("%w: no visible bridge point for hole", ErrCompile)
	ErrTriangulate = fmt.Errorf("%w: triangulation failed", ErrCompile)
)

var (
	ErrWrongMagic    = errors.New("navpoly: wrong magic number")
	ErrWrongVersion  = errors.New("navpoly: wrong version number")
	ErrCorrupt       = errors.New("navpoly: corrupt data")
	ErrUnknownFormat = errors.New("navpoly: unknown format")
)
