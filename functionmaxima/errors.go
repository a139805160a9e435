package functionmaxima

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrArgumentNotFound = fmt.Errorf("argument not in domain: %w", commerr.ErrNotFound)
	ErrInvalidObject    = fmt.Errorf("foreign function maxima: %w", commerr.ErrInvalidArgument)
	ErrInvalidIterator  = errors.New("invalid iterator")
)
