package serialization

// Format constants for the .minn model file. All multi-byte integers
// are little-endian and written field by field; there is no implicit
// struct padding anywhere in the format.
const (
	// MagicNumber is "MINN" read as a little-endian uint32.
	MagicNumber uint32 = 0x4E4E494D

	// VersionMajor is the only major version this reader accepts.
	VersionMajor uint16 = 1
	// VersionMinor is the minor version written by the writer.
	VersionMinor uint16 = 0

	// HeaderSize is the fixed byte size of the file header.
	HeaderSize = 16

	// MaxLayers bounds the header layer count to (0, MaxLayers].
	MaxLayers = 1000

	// MinTensorRank and MaxTensorRank bound serialized tensor ranks.
	MinTensorRank = 1
	MaxTensorRank = 8
)

// header is the 16-byte file header:
//
//	[4 bytes: magic (uint32 LE)]
//	[2 bytes: version_major (uint16 LE)]
//	[2 bytes: version_minor (uint16 LE)]
//	[4 bytes: num_layers (uint32 LE)]
//	[4 bytes: reserved (uint32 LE)]
type header struct {
	Magic        uint32
	VersionMajor uint16
	VersionMinor uint16
	NumLayers    uint32
	Reserved     uint32
}
