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
	"sort"

	"github.com/fentec-project/clgauss/internal"
	"github.com/pkg/errors"
)

// Names of the uniform sources known to NewGaussian.
const (
	SourceMT     = "mt"
	SourceSalsa  = "salsa"
	SourceCrypto = "crypto"
)

var gaussianCtors = map[string]func(seed int64) Gaussian{
	SourceMT: func(seed int64) Gaussian {
		return NewCLGaussian[UniformMT](seed)
	},
	SourceSalsa: func(seed int64) Gaussian {
		return NewCLGaussian[UniformDet](seed)
	},
	SourceCrypto: func(seed int64) Gaussian {
		return NewCLGaussian[UniformCrypto](seed)
	},
}

// NewGaussian returns a CLGaussian sampler backed by the uniform
// source registered under name, seeded with seed.
func NewGaussian(name string, seed int64) (Gaussian, error) {
	ctor, ok := gaussianCtors[name]
	if !ok {
		return nil, errors.Wrapf(internal.ErrUnknownSource, "%q", name)
	}
	return ctor(seed), nil
}

// SourceNames lists the names accepted by NewGaussian in
// alphabetical order.
func SourceNames() []string {
	names := make([]string, 0, len(gaussianCtors))
	for name := range gaussianCtors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
