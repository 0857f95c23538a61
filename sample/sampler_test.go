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

package sample_test

import (
	"testing"

	"github.com/fentec-project/clgauss/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

type paramBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

var standardBounds = paramBounds{
	meanLow:  -0.05,
	meanHigh: 0.05,
	varLow:   0.95,
	varHigh:  1.05,
}

// tightBounds is meant for at least a million samples.
var tightBounds = paramBounds{
	meanLow:  -0.01,
	meanHigh: 0.01,
	varLow:   0.99,
	varHigh:  1.01,
}

func testGaussianSampler(t *testing.T, g sample.Gaussian, n int, expect paramBounds) {
	vec := make([]float64, n)
	for i := range vec {
		x, err := g.Next()
		require.NoError(t, err)
		if g.Weight() != 1 {
			t.Fatalf("weight of sample %d is %v, expected 1", i, g.Weight())
		}
		vec[i] = x
	}
	me, v := stat.MeanVariance(vec, nil)

	assert.True(t, me > expect.meanLow, "mean value of the normal distribution is too low")
	assert.True(t, me < expect.meanHigh, "mean value of the normal distribution is too high")
	assert.True(t, v > expect.varLow, "variance of the normal distribution is too low")
	assert.True(t, v < expect.varHigh, "variance of the normal distribution is too high")
}
