// Copyright 2025 The mininn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader provides the public API for reading and writing
// .minn model files. See the internal serialization package for the
// byte layout.
package loader

import (
	"io"

	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/serialization"
)

// Format constants.
const (
	MagicNumber  = serialization.MagicNumber
	VersionMajor = serialization.VersionMajor
	VersionMinor = serialization.VersionMinor
	MaxLayers    = serialization.MaxLayers
)

// Common format errors, matchable with errors.Is.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrInvalidLayerCount  = serialization.ErrInvalidLayerCount
	ErrUnknownLayerType   = serialization.ErrUnknownLayerType
	ErrUnsupportedDType   = serialization.ErrUnsupportedDType
	ErrInvalidRank        = serialization.ErrInvalidRank
)

// Load reads a .minn model file from disk.
func Load(path string) (*nn.Model, error) {
	return serialization.LoadModel(path)
}

// Save writes a model to disk in .minn format.
func Save(model *nn.Model, path string) error {
	return serialization.SaveModel(model, path)
}

// Read reads a serialized model from r.
func Read(r io.Reader) (*nn.Model, error) {
	return serialization.ReadModel(r)
}

// Write writes a serialized model to w.
func Write(w io.Writer, model *nn.Model) error {
	return serialization.WriteModel(w, model)
}
