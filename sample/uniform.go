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

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mathext/prng"
)

// unitBits is the number of random bits kept per deviate. With 52
// bits, k + 0.5 is exact for every k, so unitOpen never returns 0
// or 1.
const unitBits = 52

// unitOpen maps the top unitBits bits of r onto the open interval
// (0, 1).
func unitOpen(r uint64) float64 {
	k := r >> (64 - unitBits)
	return (float64(k) + 0.5) / (1 << unitBits)
}

// UniformMT samples uniform deviates from the interval (0, 1) using
// the 32-bit Mersenne Twister. All deviates have weight 1. The zero
// value is seeded with 0 on first use.
type UniformMT struct {
	src *prng.MT19937
}

// NewUniformMT returns an instance of UniformMT seeded with seed.
func NewUniformMT(seed int64) *UniformMT {
	u := &UniformMT{}
	u.Seed(seed)
	return u
}

// Seed resets the generator state from seed.
func (u *UniformMT) Seed(seed int64) {
	u.src = prng.NewMT19937()
	u.src.Seed(uint64(seed))
}

// Next returns the next deviate. It never fails.
func (u *UniformMT) Next() (float64, error) {
	if u.src == nil {
		u.Seed(0)
	}
	return unitOpen(u.src.Uint64()), nil
}

// Weight always returns 1.
func (u *UniformMT) Weight() float64 {
	return 1
}

// UniformCrypto samples uniform deviates from the interval (0, 1)
// using a cryptographically secure source of randomness. Its output
// cannot be reproduced; seeds are ignored. All deviates have weight 1.
// The zero value reads from crypto/rand.Reader.
type UniformCrypto struct {
	reader io.Reader
	buf    [8]byte
}

// NewUniformCrypto returns an instance of UniformCrypto reading its
// randomness from r. If r is nil, crypto/rand.Reader is used.
func NewUniformCrypto(r io.Reader) *UniformCrypto {
	if r == nil {
		r = rand.Reader
	}
	return &UniformCrypto{reader: r}
}

// Seed resets the randomness source to crypto/rand.Reader. The seed
// itself is not used.
func (u *UniformCrypto) Seed(int64) {
	u.reader = rand.Reader
}

// Next returns the next deviate, or an error if the randomness
// source could not be read.
func (u *UniformCrypto) Next() (float64, error) {
	if u.reader == nil {
		u.reader = rand.Reader
	}
	if _, err := io.ReadFull(u.reader, u.buf[:]); err != nil {
		return 0, errors.Wrap(err, "error while sampling")
	}
	return unitOpen(binary.LittleEndian.Uint64(u.buf[:])), nil
}

// Weight always returns 1.
func (u *UniformCrypto) Weight() float64 {
	return 1
}
