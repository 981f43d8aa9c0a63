// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for hioload-collections.

package api

import "fmt"

// Errors returned by Result.Err and by configuration code.
var (
	ErrOverflow        = fmt.Errorf("collection overflow")
	ErrEmpty           = fmt.Errorf("collection empty")
	ErrUnknownResult   = fmt.Errorf("unknown operation result")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
