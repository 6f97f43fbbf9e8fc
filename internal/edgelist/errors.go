package edgelist

import "errors"

var (
	// ErrInputNotFound means the input file is missing or cannot be read.
	ErrInputNotFound = errors.New("input not found")
	// ErrFormat means the header or a three-token edge line did not parse.
	ErrFormat = errors.New("format error")
	// ErrDomain means a weight has no real image under the transform.
	ErrDomain = errors.New("domain error")
	// ErrWrite means the output could not be created, written or closed.
	ErrWrite = errors.New("write error")
)
