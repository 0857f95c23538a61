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

// Package sample includes samplers for drawing approximately Gaussian
// values from streams of uniform deviates.
//
// Package sample provides the UniformSource contract for uniform
// deviate generators, the Gaussian interface for weighted Gaussian
// samplers, and CLGaussian, which combines twelve uniform deviates
// into one Gaussian deviate by the central limit theorem. Every
// produced value carries an importance weight, so the samplers can be
// plugged into importance-sampled Monte Carlo computations.
//
// A few uniform sources (UniformMT, UniformDet, UniformCrypto) are
// provided, but any type satisfying SeededUniform can back a
// CLGaussian:
//
//	g := sample.NewCLGaussian[sample.UniformMT](42)
//	x, err := g.Next()
//	w := g.Weight()
package sample
