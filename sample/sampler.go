/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

// UniformSource produces an infinite stream of uniform deviates,
// by convention from the open interval (0, 1), so that twelve of them
// sum to a value with mean 6 and variance 1. Each deviate has an
// importance weight attached to it.
//
// Weight must be called after Next and reports the weight of the
// deviate that Next has just returned. Callers that need both values
// of a draw call the two methods in that order, once per draw.
type UniformSource interface {
	Next() (float64, error)
	Weight() float64
}

// SeededUniform is satisfied by a pointer *U to a uniform source
// that can be initialized from an integer seed. It lets generic
// samplers own their source by value and construct it themselves.
type SeededUniform[U any] interface {
	*U
	UniformSource
	Seed(seed int64)
}

// Gaussian samples approximately standard normal values together
// with an importance weight for each of them.
//
// Weight returns the weight of the value most recently returned by
// Next.
type Gaussian interface {
	Next() (float64, error)
	Weight() float64
}

// Weighted is a single value drawn by a Gaussian sampler along with
// its importance weight.
type Weighted struct {
	Value  float64
	Weight float64
}

// Draw samples one value from g and pairs it with its weight.
func Draw(g Gaussian) (Weighted, error) {
	x, err := g.Next()
	if err != nil {
		return Weighted{}, err
	}
	return Weighted{Value: x, Weight: g.Weight()}, nil
}
