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
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/salsa20"
)

// detBlockLen is the number of keystream bytes produced per nonce.
const detBlockLen = 512

// UniformDet samples (deterministic) uniform deviates from the
// interval (0, 1). The deviates are read from the salsa20 keystream
// under a key derived from the seed, so the same seed always yields
// the same sequence. All deviates have weight 1. The zero value is
// seeded with 0 on first use.
type UniformDet struct {
	key *[32]byte
	// nonce of the next keystream block
	block uint64
	buf   [detBlockLen]byte
	pos   int
}

// NewUniformDet returns an instance of UniformDet seeded with seed.
func NewUniformDet(seed int64) *UniformDet {
	u := &UniformDet{}
	u.Seed(seed)
	return u
}

// Seed derives a new key from seed and rewinds the keystream.
func (u *UniformDet) Seed(seed int64) {
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], uint64(seed))
	key := blake2b.Sum256(s[:])
	u.key = &key
	u.block = 0
	u.pos = detBlockLen
}

// Next returns the next deviate. It never fails.
func (u *UniformDet) Next() (float64, error) {
	if u.key == nil {
		u.Seed(0)
	}
	if u.pos+8 > detBlockLen {
		u.refill()
	}
	r := binary.LittleEndian.Uint64(u.buf[u.pos : u.pos+8])
	u.pos += 8
	return unitOpen(r), nil
}

// Weight always returns 1.
func (u *UniformDet) Weight() float64 {
	return 1
}

func (u *UniformDet) refill() {
	in := make([]byte, detBlockLen) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, u.block)

	salsa20.XORKeyStream(u.buf[:], in, nonce, u.key)
	u.block++
	u.pos = 0
}
