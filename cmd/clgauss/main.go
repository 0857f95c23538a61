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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	farm "github.com/dgryski/go-farm"
	"github.com/fentec-project/clgauss/data"
	"github.com/fentec-project/clgauss/sample"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const progName = "clgauss"
const usageMessageRaw = `
Usage: clgauss [OPTIONS]

Draw approximately standard normal samples, each with its importance
weight, and write them to standard output as VALUE<TAB>WEIGHT lines.

Options:
  -n COUNT      number of samples to draw (default 10)
  -seed SEED    integer seed, or any string which is hashed into one
  -source NAME  uniform source: %s (default mt)
  -stats        print the weighted mean and variance instead of samples
  -debug        enable debug logging
`

var log = logging.MustGetLogger("clgauss")

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	msg := strings.TrimLeft(usageMessageRaw, "\n")
	return fmt.Sprintf(msg, strings.Join(sample.SourceNames(), ", "))
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// parseSeed accepts a decimal integer as is. Any other string is
// hashed, so that named runs stay reproducible.
func parseSeed(s string) int64 {
	if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
		return seed
	}
	return int64(farm.Fingerprint64([]byte(s)))
}

func checkCount(count int) error {
	if count < 1 {
		return errors.Errorf("sample count should be at least 1, got %d", count)
	}
	return nil
}

func openSampler(seedArg, sourceName string) (sample.Gaussian, error) {
	seed := parseSeed(seedArg)
	log.Debugf("seed %q -> %d", seedArg, seed)

	return sample.NewGaussian(sourceName, seed)
}

func drawSamples(count int, sourceName string, g sample.Gaussian) (data.Vector, data.Vector, error) {
	log.Infof("drawing %d samples from source %s", count, sourceName)
	return data.NewGaussianVector(count, g)
}

func writeSamples(w io.Writer, vals, weights data.Vector) error {
	out := bufio.NewWriter(w)
	for i := range vals {
		if _, err := fmt.Fprintf(out, "%.17g\t%.17g\n", vals[i], weights[i]); err != nil {
			return err
		}
	}
	return out.Flush()
}

func writeStats(w io.Writer, vals, weights data.Vector) error {
	mean, err := data.WeightedMean(vals, weights)
	if err != nil {
		return err
	}
	variance, err := data.WeightedVariance(vals, weights)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "n\t%d\nmean\t%.17g\nvariance\t%.17g\n", len(vals), mean, variance)
	return err
}

func main() {
	startLogging()

	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(&nullWriter{})

	var (
		count        int
		seedArg      string
		sourceName   string
		statsOnly    bool
		debugLogging bool
	)
	flags.IntVar(&count, "n", 10, "")
	flags.StringVar(&seedArg, "seed", "0", "")
	flags.StringVar(&sourceName, "source", sample.SourceMT, "")
	flags.BoolVar(&statsOnly, "stats", false, "")
	flags.BoolVar(&debugLogging, "debug", false, "")

	argErr := flags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}
	if flags.NArg() > 0 {
		usageErrorf("unexpected argument %q", flags.Arg(0))
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := checkCount(count); err != nil {
		usageErrorf("%v", err)
	}

	g, err := openSampler(seedArg, sourceName)
	if err != nil {
		usageErrorf("%v", err)
	}

	vals, weights, err := drawSamples(count, sourceName, g)
	if err != nil {
		exitError(err)
	}

	if statsOnly {
		err = writeStats(os.Stdout, vals, weights)
	} else {
		err = writeSamples(os.Stdout, vals, weights)
	}
	if err != nil {
		exitError(err)
	}
	log.Debug("done")
}
