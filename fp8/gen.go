// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"
	"text/template"

	"github.com/maruel/l-mul-go/fp8"
)

const srcTmpl = `// Code generated "go run gen.go" DO NOT EDIT.

package fp8_test

// See decode_test.go
var {{.Name}} = []testData{
{{range .Data}}{ {{.V}}, {{.F}}, {{.Sign}}, {{.Exponent}}, {{.Mantissa}}, },
{{end}} }
`

type testData struct {
	V        string
	F        string
	Sign     uint8
	Exponent uint8
	Mantissa uint8
}

// reference computes the value from the bit fields, without using the package
// decoder.
func reference(f fp8.Format, sign, exponent, mantissa uint8) float32 {
	v := 0.
	if exponent != 0 {
		v = math.Ldexp(1+float64(mantissa)/math.Exp2(float64(f.MantissaBits())), int(exponent)-(1<<(f.ExponentBits()-1)-1))
	}
	if sign != 0 {
		v = -v
	}
	return float32(v)
}

func gen(f fp8.Format) []testData {
	var out [1 << 8]testData
	for i := range out {
		v := fp8.F8(i)
		sign := uint8(i >> 7)
		exponent := uint8(i>>f.MantissaBits()) & uint8(f.MaxExponent())
		mantissa := uint8(i) & uint8(f.MaxMantissa())
		want := reference(f, sign, exponent, mantissa)
		if got := f.Float32(v); got != want {
			panic(fmt.Sprintf("%s 0x%02x: decoded %g, expected %g", f, i, got, want))
		}
		out[i] = testData{
			V:        fmt.Sprintf("0x%02x", i),
			F:        fmt.Sprintf("%g", want),
			Sign:     sign,
			Exponent: exponent,
			Mantissa: mantissa,
		}
	}
	return out[:]
}

func generate(name, filename string, td []testData) {
	data := map[string]any{
		"Name": name,
		"Data": td,
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	t := template.Must(template.New("").Parse(srcTmpl))
	if err := t.Execute(f, data); err != nil {
		panic(err)
	}
	if err := exec.Command("gofmt", "-w", "-s", filename).Run(); err != nil {
		panic(fmt.Errorf("failed to run gofmt: %w", err))
	}
}

func main() {
	for _, f := range fp8.Formats() {
		s := strings.ToLower(f.String())
		generate(s+"TestData", s+"_data_test.go", gen(f))
	}
}
