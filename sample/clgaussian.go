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

// clDraws is the number of uniform deviates summed per Gaussian
// deviate. The sum of twelve unit-interval deviates has variance 1.
const clDraws = 12

// clShift is the mean of the sum of clDraws unit-interval deviates.
const clShift = 6.0

// CLGaussian samples approximately standard normal values using the
// central limit theorem: it sums twelve uniform deviates drawn from
// a source of type U and recenters the sum. The importance weight of
// a value is the product of the weights of the twelve deviates that
// produced it.
//
// The source is owned by the sampler and never exposed. A zero
// CLGaussian uses a zero source, which must itself be usable;
// NewCLGaussian seeds the source explicitly. A CLGaussian is not safe
// for concurrent use.
type CLGaussian[U any, PU SeededUniform[U]] struct {
	source U
	// weight of the last value returned by Next, 0 before the
	// first call
	weight float64
}

// NewCLGaussian returns an instance of CLGaussian sampler whose
// uniform source is initialized with the given seed.
func NewCLGaussian[U any, PU SeededUniform[U]](seed int64) *CLGaussian[U, PU] {
	g := &CLGaussian[U, PU]{}
	PU(&g.source).Seed(seed)
	return g
}

// Next draws twelve deviates from the underlying source and returns
// their sum shifted by -6. Errors returned by the source are passed
// on as they are; in that case the weight of the previous value is
// kept.
func (g *CLGaussian[U, PU]) Next() (float64, error) {
	src := PU(&g.source)
	x := 0.0
	w := 1.0
	for i := 0; i < clDraws; i++ {
		u, err := src.Next()
		if err != nil {
			return 0, err
		}
		x += u
		w *= src.Weight()
	}
	g.weight = w
	return x - clShift, nil
}

// Weight returns the importance weight of the value most recently
// returned by Next. It returns 0 if Next has not been called yet.
func (g *CLGaussian[U, PU]) Weight() float64 {
	return g.weight
}
