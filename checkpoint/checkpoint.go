// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint saves and restores model parameters in the .ember
// file format.
package checkpoint

import (
	"github.com/ember-ml/ember/internal/checkpoint"
	"github.com/ember-ml/ember/internal/nn"
)

// Checkpoint is a loaded .ember file.
type Checkpoint = checkpoint.Checkpoint

// Header is the JSON header of a .ember file.
type Header = checkpoint.Header

// TensorMeta describes one saved tensor.
type TensorMeta = checkpoint.TensorMeta

// Sentinel errors returned by Load.
var (
	ErrInvalidMagic       = checkpoint.ErrInvalidMagic
	ErrUnsupportedVersion = checkpoint.ErrUnsupportedVersion
	ErrChecksumMismatch   = checkpoint.ErrChecksumMismatch
)

// Save writes the parameters to path in .ember format.
//
//	checkpoint.Save("model.ember", model.Parameters(), "Sequential", nil)
func Save(path string, params []*nn.Parameter, modelType string, metadata map[string]string) error {
	return checkpoint.Save(path, params, modelType, metadata)
}

// Load reads and fully validates a .ember file.
func Load(path string) (*Checkpoint, error) {
	return checkpoint.Load(path)
}
