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
	"bytes"
	"fmt"
	"testing"

	"github.com/fentec-project/clgauss/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	var tests = []struct {
		name string
		new  func(seed int64) sample.UniformSource
	}{
		{
			name: "MT",
			new: func(seed int64) sample.UniformSource {
				return sample.NewUniformMT(seed)
			},
		},
		{
			name: "Det",
			new: func(seed int64) sample.UniformSource {
				return sample.NewUniformDet(seed)
			},
		},
		{
			name: "Crypto",
			new: func(int64) sample.UniformSource {
				return sample.NewUniformCrypto(nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			u := test.new(1)
			sum := 0.0
			n := 10000
			for i := 0; i < n; i++ {
				x, err := u.Next()
				require.NoError(t, err)
				assert.True(t, x > 0 && x < 1, "deviate %v is out of (0, 1)", x)
				assert.Equal(t, 1.0, u.Weight())
				sum += x
			}
			assert.InDelta(t, 0.5, sum/float64(n), 0.02)
		})
	}
}

func TestUniform_Seeded(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, 1 << 40} {
		t.Run(fmt.Sprintf("Seed=%d", seed), func(t *testing.T) {
			mt1, mt2 := sample.NewUniformMT(seed), sample.NewUniformMT(seed)
			det1, det2 := sample.NewUniformDet(seed), sample.NewUniformDet(seed)
			// more than one keystream block
			for i := 0; i < 200; i++ {
				a, _ := mt1.Next()
				b, _ := mt2.Next()
				assert.Equal(t, a, b)

				a, _ = det1.Next()
				b, _ = det2.Next()
				assert.Equal(t, a, b)
			}
		})
	}

	det1, det2 := sample.NewUniformDet(1), sample.NewUniformDet(2)
	a, _ := det1.Next()
	b, _ := det2.Next()
	assert.NotEqual(t, a, b)

	mt1, mt2 := sample.NewUniformMT(1), sample.NewUniformMT(2)
	a, _ = mt1.Next()
	b, _ = mt2.Next()
	assert.NotEqual(t, a, b)
}

func TestUniformDet_Reseed(t *testing.T) {
	u := sample.NewUniformDet(5)
	first := make([]float64, 100)
	for i := range first {
		first[i], _ = u.Next()
	}

	u.Seed(5)
	for i := range first {
		x, _ := u.Next()
		assert.Equal(t, first[i], x)
	}
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestUniformCrypto_Error(t *testing.T) {
	u := sample.NewUniformCrypto(failingReader{})
	_, err := u.Next()
	assert.Error(t, err)
	assert.Equal(t, errRead, errors.Cause(err))

	// a short read is also an error
	u = sample.NewUniformCrypto(bytes.NewReader([]byte{1, 2, 3}))
	_, err = u.Next()
	assert.Error(t, err)
}

func TestUniform_ZeroValue(t *testing.T) {
	var mt sample.UniformMT
	var det sample.UniformDet
	var cr sample.UniformCrypto
	seededMT := sample.NewUniformMT(0)
	seededDet := sample.NewUniformDet(0)

	for i := 0; i < 100; i++ {
		a, err := mt.Next()
		require.NoError(t, err)
		b, _ := seededMT.Next()
		assert.Equal(t, b, a)

		a, err = det.Next()
		require.NoError(t, err)
		b, _ = seededDet.Next()
		assert.Equal(t, b, a)

		a, err = cr.Next()
		require.NoError(t, err)
		assert.True(t, a > 0 && a < 1, "deviate %v is out of (0, 1)", a)
	}
}

func TestCLGaussian_ZeroValue(t *testing.T) {
	var g sample.CLGaussian[sample.UniformMT, *sample.UniformMT]
	seeded := sample.NewCLGaussian[sample.UniformMT](0)

	for i := 0; i < 10; i++ {
		s1, err := sample.Draw(&g)
		require.NoError(t, err)
		s2, err := sample.Draw(seeded)
		require.NoError(t, err)
		assert.Equal(t, s2, s1)
	}
}
