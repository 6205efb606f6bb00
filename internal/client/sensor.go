package client

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/pulse-keeper/models"
)

// syntheticSampleSource generates plausible heart-rate and HRV readings
// around resting baselines. It stands in for a hardware sensor on platforms
// where none is attached.
type syntheticSampleSource struct {
	baseHR  float64
	baseHRV float64
}

func newSyntheticSampleSource() *syntheticSampleSource {
	return &syntheticSampleSource{baseHR: 64, baseHRV: 58}
}

func (s *syntheticSampleSource) Sample(ctx context.Context) (models.VitalSample, error) {
	if err := ctx.Err(); err != nil {
		return models.VitalSample{}, err
	}

	return models.VitalSample{
		TakenAt:   time.Now().UTC(),
		HeartRate: s.baseHR + rand.NormFloat64()*8,
		HRV:       s.baseHRV + rand.NormFloat64()*12,
	}, nil
}

// vitalsScoreCalculator maps a raw sample onto a 0-100 stress score.
//
// Elevated heart rate raises the score, high heart-rate variability lowers
// it. The confidence slice carries one weight per contributing component
// (heart rate, HRV) so later merges can union evidence from several devices.
type vitalsScoreCalculator struct{}

func newVitalsScoreCalculator() *vitalsScoreCalculator {
	return &vitalsScoreCalculator{}
}

func (c *vitalsScoreCalculator) Score(sample models.VitalSample) (float64, models.StressCategory, []float64) {
	hrComponent := clamp((sample.HeartRate-50)/1.2, 0, 100)
	hrvComponent := clamp(100-sample.HRV, 0, 100)

	score := clamp(0.6*hrComponent+0.4*hrvComponent, 0, 100)

	var category models.StressCategory
	switch {
	case score < 30:
		category = models.CategoryCalm
	case score < 55:
		category = models.CategoryMild
	case score < 80:
		category = models.CategoryElevated
	default:
		category = models.CategoryAcute
	}

	return score, category, []float64{0.6, 0.4}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
