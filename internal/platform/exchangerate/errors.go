package exchangerate

import "errors"

// ErrInvalidConfig is returned by NewClient when the configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid exchange rate configuration")
