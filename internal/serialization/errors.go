package serialization

import "errors"

// Common format errors.
var (
	ErrInvalidMagic       = errors.New("invalid model file format (magic number mismatch)")
	ErrUnsupportedVersion = errors.New("unsupported model version")
	ErrInvalidLayerCount  = errors.New("invalid layer count")
	ErrUnknownLayerType   = errors.New("unknown layer type")
	ErrUnsupportedDType   = errors.New("unsupported tensor data type")
	ErrInvalidRank        = errors.New("invalid tensor rank")
)
