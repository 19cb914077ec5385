// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim exposes gradient-descent parameter updaters.
package optim

import (
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
)

// Optimizer is the base interface for parameter updaters.
type Optimizer = optim.Optimizer

// Config is the base optimizer configuration.
type Config = optim.Config

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig holds SGD configuration.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
