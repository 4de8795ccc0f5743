// Package tensor provides the dense n-dimensional tensor type used by
// the mininn inference runtime.
package tensor

// DataType represents runtime type information for tensors.
type DataType uint8

// Supported data types. Only Float32 payloads are populated today;
// Int8 and Int4 are format tags reserved for quantized models.
const (
	Float32 DataType = iota
	Int8
	Int4
)

// Size returns the byte size of one element of the data type.
// Int4 reports 1 byte (nibbles are never packed in this runtime).
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Int8, Int4:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int8:
		return "int8"
	case Int4:
		return "int4"
	default:
		return "unknown"
	}
}
