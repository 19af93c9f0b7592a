// ir-embed turns cabinet IR WAV captures into the Go source embedded in
// the firmware image (the irdata package). Inputs are folded to mono,
// resampled to the pedal rate, truncated to the convolver budget, and peak
// normalized.
//
// Usage:
//
//	ir-embed -output irdata/irdata.go 112-open.wav 212-vintage.wav ...
//
// Each array is named after its file: 112-open.wav becomes cab112Open.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cwbudde/mulebox/internal/wavutil"
	"github.com/cwbudde/mulebox/pedal"
)

func main() {
	output := flag.String("output", "irdata/irdata.go", "Generated Go file path")
	pkg := flag.String("package", "irdata", "Package name for the generated file")
	normalize := flag.Float64("normalize", 0.9, "Peak normalization target")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ir-embed [flags] input.wav ...")
		os.Exit(1)
	}
	if len(paths) > pedal.MaxPositions {
		fmt.Fprintf(os.Stderr, "too many IRs: %d (selector has %d positions)\n", len(paths), pedal.MaxPositions)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("// Code generated by ir-embed. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", *pkg)

	for _, path := range paths {
		mono, err := wavutil.ReadMonoAtRate(path, pedal.SampleRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		if len(mono) == 0 {
			fmt.Fprintf(os.Stderr, "%s: empty IR\n", path)
			os.Exit(1)
		}
		if len(mono) > pedal.MaxKernelLen {
			fmt.Fprintf(os.Stderr, "%s: truncating %d -> %d samples\n", path, len(mono), pedal.MaxKernelLen)
			mono = mono[:pedal.MaxKernelLen]
		}

		samples := wavutil.MonoToFloat32(mono)
		wavutil.NormalizePeak(samples, float32(*normalize))

		name := varName(path)
		fmt.Fprintf(&b, "var %s = []float32{\n", name)
		for i := 0; i < len(samples); i += 8 {
			end := i + 8
			if end > len(samples) {
				end = len(samples)
			}
			parts := make([]string, 0, 8)
			for _, v := range samples[i:end] {
				parts = append(parts, fmt.Sprintf("%.8g", v))
			}
			fmt.Fprintf(&b, "\t%s,\n", strings.Join(parts, ", "))
		}
		b.WriteString("}\n\n")

		fmt.Printf("%-16s %s: %d samples (%.1f ms)\n",
			name, path, len(samples), float64(len(samples))/float64(pedal.SampleRate)*1000)
	}

	if err := os.WriteFile(*output, []byte(strings.TrimRight(b.String(), "\n")+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d IRs)\n", *output, len(paths))
}

// varName derives a Go identifier from a WAV filename:
// "112-open.wav" -> "cab112Open".
func varName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	b.WriteString("cab")
	upper := true
	for _, r := range base {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper && unicode.IsLetter(r) {
			r = unicode.ToUpper(r)
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}
