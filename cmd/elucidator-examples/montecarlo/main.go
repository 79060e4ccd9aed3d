// Copyright (c) 2026 Neomantra Corp
//
// montecarlo is a worked example demonstrating GetInBB end-to-end: it
// registers a "state" designation, inserts one record per simulated step
// recording hits/misses of random (x,y) darts thrown into [-1,1]x[-1,1]
// against the unit circle, and recovers a running pi estimate purely by
// querying the store over an expanding time window. Grounded on
// original_source/elucidator-examples/rust/monte_carlo/src/main.rs.

package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/neomantra/elucidator-go"
)

const (
	nSteps          = 100000
	samplesPerStep  = 50
	displayInterval = 5000
	zScore95CI      = 1.959963984540054
)

type stepSummary struct {
	hits, misses uint64
}

func simulateStep(rng *rand.Rand, trials int) stepSummary {
	var s stepSummary
	for i := 0; i < trials; i++ {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		if x*x+y*y <= 1.0 {
			s.hits++
		} else {
			s.misses++
		}
	}
	return s
}

func runExperiment(store *elucidator.Store, rng *rand.Rand, steps, samples int) error {
	d, ok := store.Designation("state")
	if !ok {
		return fmt.Errorf("designation %q not registered", "state")
	}
	for idx := 0; idx < steps; idx++ {
		step := simulateStep(rng, samples)
		buf, err := d.Encode(map[string]elucidator.Value{
			"hits":   elucidator.NewU64Value(step.hits),
			"misses": elucidator.NewU64Value(step.misses),
		})
		if err != nil {
			return err
		}
		t := float64(idx)
		if err := store.Insert(elucidator.Record{
			XMin: -1, XMax: 1,
			YMin: -1, YMax: 1,
			ZMin: -1, ZMax: 1,
			TMin: t, TMax: t,
			Designation: "state",
			Buffer:      buf,
		}); err != nil {
			return err
		}
	}
	return nil
}

type analysisResult struct {
	timestep                int
	totalHits, totalMisses  uint64
	piEstimate              float64
	piLow, piHigh           float64
}

func calcPiEstimate(hits, misses float64) float64 {
	if hits+misses == 0 {
		return 0
	}
	return hits / (hits + misses) * 4.0
}

func calcConfidenceInterval(hits, misses, zscore float64) (float64, float64) {
	p := hits / (hits + misses)
	se := math.Sqrt(p * (1 - p) / (hits + misses))
	return 4.0 * (p - zscore*se), 4.0 * (p + zscore*se)
}

func analyze(store *elucidator.Store, timestep int) (analysisResult, error) {
	records, err := store.GetInBB(elucidator.Box{
		XMin: -1, XMax: 1,
		YMin: -1, YMax: 1,
		ZMin: -1, ZMax: 1,
		TMin: 0, TMax: float64(timestep),
	}, "state", 0)
	if err != nil {
		return analysisResult{}, err
	}

	var totalHits, totalMisses uint64
	for _, fields := range records {
		if h, ok := fields["hits"]; ok {
			v, _ := h.AsU64()
			totalHits += v
		}
		if m, ok := fields["misses"]; ok {
			v, _ := m.AsU64()
			totalMisses += v
		}
	}

	piEstimate := calcPiEstimate(float64(totalHits), float64(totalMisses))
	piLow, piHigh := calcConfidenceInterval(float64(totalHits), float64(totalMisses), zScore95CI)
	return analysisResult{
		timestep:    timestep,
		totalHits:   totalHits,
		totalMisses: totalMisses,
		piEstimate:  piEstimate,
		piLow:       piLow,
		piHigh:      piHigh,
	}, nil
}

func main() {
	rng := rand.New(rand.NewSource(1))
	store := elucidator.NewStore()
	if err := store.InsertSpecText("state", "hits: u64, misses: u64"); err != nil {
		panic(err)
	}

	if err := runExperiment(store, rng, nSteps, samplesPerStep); err != nil {
		panic(err)
	}

	for t := displayInterval; t <= nSteps; t += displayInterval {
		result, err := analyze(store, t)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Timestep %d: Pi ~= %v, 95%% CI (%v, %v)\n",
			result.timestep, result.piEstimate, result.piLow, result.piHigh)
	}
}
