// cab-fit matches the cabinet synthesizer to a captured impulse response.
// It searches the synth's parameter space with a Mayfly optimizer, scoring
// each candidate against the reference with the analysis metrics, and
// writes the best IR plus a JSON report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/mayfly"
	"github.com/cwbudde/mulebox/analysis"
	"github.com/cwbudde/mulebox/cabsynth"
	"github.com/cwbudde/mulebox/internal/wavutil"
	"github.com/cwbudde/mulebox/pedal"
)

type knobDef struct {
	Name  string
	Min   float64
	Max   float64
	IsInt bool
}

var knobs = []knobDef{
	{Name: "duration", Min: 0.02, Max: 0.17},
	{Name: "modes", Min: 16, Max: 96, IsInt: true},
	{Name: "cone", Min: 50, Max: 140},
	{Name: "brightness", Min: 0.4, Max: 1.8},
	{Name: "density", Min: 0.8, Max: 2.6},
	{Name: "rolloff", Min: 2500, Max: 7500},
	{Name: "direct", Min: 0.1, Max: 1.0},
	{Name: "early", Min: 0, Max: 32, IsInt: true},
	{Name: "late", Min: 0.0, Max: 0.08},
	{Name: "low_decay", Min: 0.01, Max: 0.12},
	{Name: "high_decay", Min: 0.002, Max: 0.02},
}

type runReport struct {
	ReferencePath  string             `json:"reference_path"`
	OutputIR       string             `json:"output_ir"`
	SampleRate     int                `json:"sample_rate"`
	ElapsedSeconds float64            `json:"elapsed_seconds"`
	Evaluations    int                `json:"evaluations"`
	MayflyVariant  string             `json:"mayfly_variant"`
	BestScore      float64            `json:"best_score"`
	BestSimilarity float64            `json:"best_similarity"`
	BestMetrics    analysis.Metrics   `json:"best_metrics"`
	BestKnobs      map[string]float64 `json:"best_knobs"`
}

func main() {
	referencePath := flag.String("reference", "reference/cab.wav", "Reference IR WAV path")
	outputIR := flag.String("output-ir", "out/cab-best.wav", "Path to write the best synthesized IR")
	reportPath := flag.String("report", "", "Report JSON path (default: <output-ir>.report.json)")
	seed := flag.Int64("seed", 1, "Random seed")
	timeBudget := flag.Float64("time-budget", 60.0, "Optimization time budget in seconds")
	maxEvals := flag.Int("max-evals", 4000, "Maximum objective evaluations")
	reportEvery := flag.Int("report-every", 100, "Print progress every N evaluations")
	mayflyVariant := flag.String("mayfly-variant", "desma", "Mayfly variant: ma|desma|olce|eobbma|gsasma|mpma|aoblmoa")
	mayflyPop := flag.Int("mayfly-pop", 10, "Male and female population size per Mayfly run")
	mayflyRoundEvals := flag.Int("mayfly-round-evals", 240, "Target eval budget per Mayfly round")
	flag.Parse()

	if *outputIR == "" {
		die("output-ir must not be empty")
	}
	if *maxEvals < 1 {
		die("max-evals must be >= 1")
	}
	if *timeBudget <= 0 {
		die("time-budget must be > 0")
	}
	if *reportEvery < 1 {
		*reportEvery = 1
	}
	if *mayflyPop < 2 {
		*mayflyPop = 2
	}
	if *mayflyRoundEvals < *mayflyPop*2 {
		*mayflyRoundEvals = *mayflyPop * 2
	}
	if *reportPath == "" {
		*reportPath = *outputIR + ".report.json"
	}

	ref, err := wavutil.ReadMonoAtRate(*referencePath, pedal.SampleRate)
	if err != nil {
		die("failed to read reference: %v", err)
	}
	if len(ref) > pedal.MaxKernelLen {
		ref = ref[:pedal.MaxKernelLen]
	}

	evaluate := func(vals []float64) (analysis.Metrics, []float32, error) {
		cfg := configFromKnobs(vals, *seed)
		ir, err := cabsynth.Generate(cfg)
		if err != nil {
			return analysis.Metrics{}, nil, err
		}
		cand := make([]float64, len(ir))
		for i, v := range ir {
			cand[i] = float64(v)
		}
		return analysis.Compare(ref, cand, pedal.SampleRate), ir, nil
	}

	start := time.Now()
	deadline := start.Add(time.Duration(*timeBudget * float64(time.Second)))
	evals := 0

	best := midpointKnobs()
	bestM, bestIR, err := evaluate(best)
	if err != nil {
		die("initial evaluation failed: %v", err)
	}
	evals++
	fmt.Printf("Start score=%.4f similarity=%.2f%%\n", bestM.Score, bestM.Similarity*100.0)

	round := 0
	for evals < *maxEvals && time.Now().Before(deadline) {
		round++
		remaining := *maxEvals - evals
		budget := *mayflyRoundEvals
		if budget > remaining {
			budget = remaining
		}
		iters := budget / (2 * (*mayflyPop))
		if iters < 1 {
			iters = 1
		}

		cfg, err := newMayflyConfig(strings.ToLower(*mayflyVariant), *mayflyPop, len(knobs), iters)
		if err != nil {
			die("invalid mayfly variant: %v", err)
		}
		cfg.Rand = rand.New(rand.NewSource(*seed + int64(round)*7919))

		cfg.ObjectiveFunc = func(pos []float64) float64 {
			if evals >= *maxEvals || time.Now().After(deadline) {
				return bestM.Score + 1.0
			}
			vals := fromNormalized(pos)
			m, ir, err := evaluate(vals)
			evals++
			if err != nil {
				return bestM.Score + 0.8
			}
			if m.Score < bestM.Score {
				best = vals
				bestM = m
				bestIR = ir
				fmt.Printf("Improved eval=%d score=%.4f sim=%.2f%%\n", evals, bestM.Score, bestM.Similarity*100.0)
			}
			if evals%*reportEvery == 0 {
				fmt.Printf("Progress round=%d eval=%d elapsed=%.1fs best=%.4f\n",
					round, evals, time.Since(start).Seconds(), bestM.Score)
			}
			return m.Score
		}

		if _, err := runMayfly(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "mayfly round %d failed: %v\n", round, err)
			continue
		}
	}

	if err := wavutil.WriteMono(*outputIR, bestIR, pedal.SampleRate); err != nil {
		die("failed to write best IR: %v", err)
	}

	report := runReport{
		ReferencePath:  *referencePath,
		OutputIR:       *outputIR,
		SampleRate:     pedal.SampleRate,
		ElapsedSeconds: time.Since(start).Seconds(),
		Evaluations:    evals,
		MayflyVariant:  strings.ToLower(*mayflyVariant),
		BestScore:      bestM.Score,
		BestSimilarity: bestM.Similarity,
		BestMetrics:    bestM,
		BestKnobs:      knobMap(best),
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		die("failed to marshal report: %v", err)
	}
	if err := os.WriteFile(*reportPath, append(data, '\n'), 0o644); err != nil {
		die("failed to write report: %v", err)
	}

	fmt.Printf("Done: %d evals in %.1fs, best score=%.4f similarity=%.2f%%\n",
		evals, time.Since(start).Seconds(), bestM.Score, bestM.Similarity*100.0)
	fmt.Printf("Wrote %s and %s\n", *outputIR, *reportPath)
}

func configFromKnobs(vals []float64, seed int64) cabsynth.Config {
	cfg := cabsynth.DefaultConfig()
	cfg.Seed = seed
	for i, d := range knobs {
		v := vals[i]
		switch d.Name {
		case "duration":
			cfg.DurationS = v
		case "modes":
			cfg.Modes = int(v)
		case "cone":
			cfg.ConeHz = v
		case "brightness":
			cfg.Brightness = v
		case "density":
			cfg.Density = v
		case "rolloff":
			cfg.RolloffHz = v
		case "direct":
			cfg.DirectLevel = v
		case "early":
			cfg.EarlyCount = int(v)
		case "late":
			cfg.LateLevel = v
		case "low_decay":
			cfg.LowDecayS = v
		case "high_decay":
			cfg.HighDecayS = v
		}
	}
	return cfg
}

func midpointKnobs() []float64 {
	vals := make([]float64, len(knobs))
	for i, d := range knobs {
		v := 0.5 * (d.Min + d.Max)
		if d.IsInt {
			v = math.Round(v)
		}
		vals[i] = v
	}
	return vals
}

func fromNormalized(pos []float64) []float64 {
	vals := make([]float64, len(knobs))
	for i, d := range knobs {
		x := 0.0
		if i < len(pos) {
			x = pos[i]
			if x < 0 {
				x = 0
			}
			if x > 1 {
				x = 1
			}
		}
		v := d.Min + x*(d.Max-d.Min)
		if d.IsInt {
			v = math.Round(v)
		}
		vals[i] = v
	}
	return vals
}

func knobMap(vals []float64) map[string]float64 {
	m := make(map[string]float64, len(knobs))
	for i, d := range knobs {
		m[d.Name] = vals[i]
	}
	return m
}

func newMayflyConfig(variant string, pop int, dims int, iters int) (*mayfly.Config, error) {
	var cfg *mayfly.Config
	switch variant {
	case "ma":
		cfg = mayfly.NewDefaultConfig()
	case "desma":
		cfg = mayfly.NewDESMAConfig()
	case "olce":
		cfg = mayfly.NewOLCEConfig()
	case "eobbma":
		cfg = mayfly.NewEOBBMAConfig()
	case "gsasma":
		cfg = mayfly.NewGSASMAConfig()
	case "mpma":
		cfg = mayfly.NewMPMAConfig()
	case "aoblmoa":
		cfg = mayfly.NewAOBLMOAConfig()
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
	cfg.ProblemSize = dims
	cfg.LowerBound = 0.0
	cfg.UpperBound = 1.0
	cfg.MaxIterations = iters
	cfg.NPop = pop
	cfg.NPopF = pop
	cfg.NC = 2 * pop
	nm := int(math.Round(0.05 * float64(pop)))
	if nm < 1 {
		nm = 1
	}
	cfg.NM = nm
	return cfg, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
