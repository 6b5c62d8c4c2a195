// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"

	"github.com/maruel/l-mul-go/fp8"
	"github.com/maruel/l-mul-go/lmul"
	"github.com/maruel/l-mul-go/n_bits"
	"github.com/maruel/l-mul-go/tensor"
	"github.com/maruel/sillybot/huggingface"
	"golang.org/x/sync/errgroup"
)

// maxProductRows is the number of rows of a tensor multiplied by their
// transpose to measure the L-Mul error.
const maxProductRows = 64

func humanBytes(i int64) string {
	switch {
	case i > 1024*1024*1024:
		return fmt.Sprintf("%.1fGiB", float64(i)/1024./1024./1024.)
	case i > 1024*1024:
		return fmt.Sprintf("%.1fMiB", float64(i)/1024./1024.)
	case i > 1024:
		return fmt.Sprintf("%.1fkiB", float64(i)/1024.)
	default:
		return fmt.Sprintf("%dB", i)
	}
}

func transpose[T any](m [][]T) [][]T {
	out := make([][]T, len(m[0]))
	for j := range out {
		out[j] = make([]T, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// analyzeTensor quantizes t, analyzes its bit usage and measures the L-Mul
// error of its first rows multiplied by their transpose.
func analyzeTensor(t *tensor.Named, f fp8.Format, r fp8.Rand) (n_bits.AnalyzedTensor, error) {
	q, err := fp8.DowncastMatrix(f, t.Rows, r)
	if err != nil {
		return n_bits.AnalyzedTensor{}, fmt.Errorf("%s: %w", t.Name, err)
	}
	a := n_bits.AnalyzeF8(t.Name, q, f)
	n := min(len(q), maxProductRows)
	got, err := lmul.MatMulF8(q[:n], transpose(q[:n]), f, 1)
	if err != nil {
		return a, fmt.Errorf("%s: %w", t.Name, err)
	}
	want, err := lmul.MatMulExact(t.Rows[:n], transpose(t.Rows[:n]))
	if err != nil {
		return a, fmt.Errorf("%s: %w", t.Name, err)
	}
	s, err := lmul.ErrorStats(got, want)
	if err != nil {
		return a, fmt.Errorf("%s: %w", t.Name, err)
	}
	a.LMul = &s
	return a, nil
}

func calcNameLen(tensors []n_bits.AnalyzedTensor) (int, int) {
	maxNameLen := 0
	maxSizeLen := 0
	for _, t := range tensors {
		if l := len(t.Name); l > maxNameLen {
			maxNameLen = l
		}
		if l := len(strconv.FormatInt(t.NumEl, 10)); l > maxSizeLen {
			maxSizeLen = l
		}
	}
	return maxNameLen, maxSizeLen
}

func printAnalyzed(w io.Writer, all []n_bits.AnalyzedTensor) {
	maxNameLen, maxSizeLen := calcNameLen(all)
	var totalWasted, totalBytes int64
	for _, a := range all {
		wasted := int64(a.Sign.BitsWasted() + a.Exponent.BitsWasted() + a.Mantissa.BitsWasted())
		totalWasted += wasted * a.NumEl / 8
		totalBytes += a.Bytes()
		lo, hi := a.ExponentSpan()
		rel := 0.
		if a.LMul != nil {
			rel = 100 * a.LMul.MaxRel
		}
		fmt.Fprintf(w, "%-*s %s: %*dw  [%9.3g, %9.3g]  zeros=%4.1f%%  sat=%4.1f%%  exp=%3.1f/%dbits [%2d,%2d]  man=%3.1f/%dbits  codes=%3.1f/8bits  wasted=%d/8bits %8s  lmul=%5.1f%%\n",
			maxNameLen, a.Name, a.Format, maxSizeLen, a.NumEl,
			a.Min, a.Max,
			100*float64(a.Zeros)/float64(a.NumEl), 100*float64(a.Saturated)/float64(a.NumEl),
			a.Exponent.BitsActuallyUsed(), a.Exponent.Allocation, lo, hi,
			a.Mantissa.BitsActuallyUsed(), a.Mantissa.Allocation,
			a.CodesUsed(),
			wasted, humanBytes(wasted*a.NumEl/8),
			rel,
		)
	}
	if totalBytes != 0 {
		fmt.Fprintf(w, "%s (%.1f%%) wasted on %s total\n", humanBytes(totalWasted), 100.*float64(totalWasted)/float64(totalBytes), humanBytes(totalBytes))
	}
}

// analyze runs every tensor through every format concurrently. The results
// are in tensor then format order.
func analyze(ctx context.Context, tensors []tensor.Named, formats []fp8.Format, seed uint64, cpus int) ([]n_bits.AnalyzedTensor, error) {
	analyzed := make([]n_bits.AnalyzedTensor, len(tensors)*len(formats))
	cpuLimit := make(chan struct{}, cpus)
	eg, ctx2 := errgroup.WithContext(ctx)
	for i := range tensors {
		for j, f := range formats {
			k := i*len(formats) + j
			eg.Go(func() error {
				cpuLimit <- struct{}{}
				defer func() {
					<-cpuLimit
				}()
				if err := ctx2.Err(); err != nil {
					return err
				}
				slog.Info("analyze", "name", tensors[i].Name, "dtype", tensors[i].DType, "format", f)
				// Each job has its own stream so the results don't depend on
				// scheduling.
				r := rand.New(rand.NewPCG(seed, uint64(k)))
				var err error
				analyzed[k], err = analyzeTensor(&tensors[i], f, r)
				return err
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return analyzed, nil
}

func fetch(ctx context.Context, hfToken, repo string) (string, error) {
	hf, err := huggingface.New(hfToken, "")
	if err != nil {
		return "", err
	}
	return hf.EnsureFile(ctx, huggingface.PackedFileRef("hf:"+repo+"/HEAD/model.safetensors"), 0o666)
}

func cmdAnalyze(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	file := fs.String("file", "", "safetensors file to analyze")
	hfToken := fs.String("hf-token", "", "HuggingFace token")
	hfRepo := fs.String("hf-repo", "", "HuggingFace repository, e.g. \"Qwen/Qwen2.5-0.5B\"")
	tensors := fs.String("tensors", ".*", "regexp of the tensor names to analyze")
	exponentBits := fs.Int("exp", 0, "exponent bits of the FP8 format; 0 for all of them")
	cpus := fs.Int("j", runtime.NumCPU(), "tensors analyzed concurrently")
	seed := fs.Uint64("seed", 1, "random seed for the stochastic rounding")
	out := fs.String("out", "", "write the analysis as JSON to this file")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("analyze: unexpected argument %q", fs.Arg(0))
	}
	initLog(*verbose)
	if (*file == "") == (*hfRepo == "") {
		return errors.New("analyze: specify one of -file or -hf-repo")
	}
	reTensors, err := regexp.Compile(*tensors)
	if err != nil {
		return fmt.Errorf("analyze: -tensors: %w", err)
	}
	formats := fp8.Formats()
	if *exponentBits != 0 {
		f, err := fp8.NewFormat(*exponentBits)
		if err != nil {
			return fmt.Errorf("analyze: -exp: %w", err)
		}
		formats = []fp8.Format{f}
	}
	*cpus = max(*cpus, 1)

	p := *file
	if *hfRepo != "" {
		if p, err = fetch(ctx, *hfToken, *hfRepo); err != nil {
			return err
		}
	}
	s, err := tensor.Load(p, reTensors.MatchString)
	if err != nil {
		return err
	}
	slog.Info("analyze", "file", filepath.Base(p), "to_analyze", len(s.Tensors), "skipped", len(s.Skipped))
	if len(s.Skipped) != 0 {
		slog.Debug("analyze", "skipped", s.Skipped)
	}
	analyzed, err := analyze(ctx, s.Tensors, formats, *seed, *cpus)
	if err != nil {
		return err
	}
	printAnalyzed(w, analyzed)
	if *out != "" {
		data, err := json.Marshal(n_bits.AnalyzedModel{Tensors: analyzed})
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, data, 0o666); err != nil {
			return err
		}
	}
	return nil
}
