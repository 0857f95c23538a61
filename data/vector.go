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

package data

import (
	"math"

	"github.com/fentec-project/clgauss/internal"
	"github.com/fentec-project/clgauss/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewGaussianVector returns two new Vector instances: n values
// sampled by the provided sample.Gaussian and their importance
// weights. Returns an error in case of sampling failure.
func NewGaussianVector(n int, g sample.Gaussian) (Vector, Vector, error) {
	if n < 1 {
		return nil, nil, internal.ErrInvalidLength
	}
	vals := make([]float64, n)
	weights := make([]float64, n)

	for i := 0; i < n; i++ {
		s, err := sample.Draw(g)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "error while sampling element %d", i)
		}
		vals[i] = s.Value
		weights[i] = s.Weight
	}

	return NewVector(vals), NewVector(weights), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(n int, c float64) Vector {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (v Vector) CheckBound(bound float64) error {
	for _, c := range v {
		if math.Abs(c) >= bound {
			return errors.New("all coordinates of a vector should be smaller than bound")
		}
	}

	return nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, internal.ErrLengthMismatch
	}
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)

	return sum, nil
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, internal.ErrLengthMismatch
	}
	sub := make(Vector, len(v))
	floats.SubTo(sub, v, other)

	return sub, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, internal.ErrLengthMismatch
	}

	return floats.Dot(v, other), nil
}

// WeightedMean returns the mean of x where each element is weighted
// by the corresponding element of w. A nil w weights all elements
// equally.
func WeightedMean(x, w Vector) (float64, error) {
	if err := checkWeights(x, w); err != nil {
		return 0, err
	}

	return stat.Mean(x, w), nil
}

// WeightedVariance returns the unbiased variance of x where each
// element is weighted by the corresponding element of w. A nil w
// weights all elements equally.
func WeightedVariance(x, w Vector) (float64, error) {
	if err := checkWeights(x, w); err != nil {
		return 0, err
	}

	return stat.Variance(x, w), nil
}

func checkWeights(x, w Vector) error {
	if len(x) == 0 {
		return internal.ErrInvalidLength
	}
	if w != nil && len(w) != len(x) {
		return internal.ErrLengthMismatch
	}

	return nil
}
