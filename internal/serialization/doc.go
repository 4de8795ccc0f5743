// Package serialization implements the .minn binary model format.
//
// A .minn file is a fixed-layout, little-endian byte stream with no
// implicit padding:
//
//	Format Structure:
//	  [16 bytes: Header]
//	    [4 bytes: Magic "MINN" (uint32 LE)]
//	    [2 bytes: Version Major (uint16 LE)]
//	    [2 bytes: Version Minor (uint16 LE)]
//	    [4 bytes: Num Layers (uint32 LE)]
//	    [4 bytes: Reserved (uint32 LE)]
//	  [Layer records, repeated Num Layers times]
//	    [1 byte: layer type tag]
//	    Linear layers only: [weights tensor][bias tensor]
//	  [Input shape: uint32 rank + rank × uint32 dims]
//	  [Output shape: uint32 rank + rank × uint32 dims]
//
//	Serialized tensor:
//	  [1 byte: dtype tag (0 = float32)]
//	  [4 bytes: rank (uint32 LE, 1..8)]
//	  [rank × 4 bytes: dimensions (uint32 LE)]
//	  [NumElements × 4 bytes: float32 payload (LE)]
//
// Any short read, malformed field, or unknown tag aborts the load; the
// returned error carries the file path and the underlying cause.
package serialization
