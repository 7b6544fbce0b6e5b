package evalutils

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

var (
	// ErrLengthMismatch is returned when calculated and ground-truth
	// parameter lists differ in length.
	ErrLengthMismatch = errors.New("evalutils: parameter lists differ in length")

	// ErrNoData is returned when no valid parameter pair is left after
	// dropping NaN entries.
	ErrNoData = errors.New("evalutils: no valid parameter pairs")

	// ErrNoCommonSensors is returned when the per-sensor inputs share
	// no sensor name.
	ErrNoCommonSensors = errors.New("evalutils: no common sensors")
)

// ErrorMetrics summarizes the deviation of calculated parameter values
// from their ground truth.
type ErrorMetrics struct {
	MeanError    float64
	ErrorStd     float64
	AbsMeanError float64
	AbsErrorStd  float64
	MaxAbsError  float64
}

// ParameterErrors computes the error metrics between two parameter
// lists paired by index. Pairs where either value is NaN are dropped.
func ParameterErrors(calculated, groundTruth []float64) (ErrorMetrics, error) {
	if len(calculated) != len(groundTruth) {
		return ErrorMetrics{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(calculated), len(groundTruth))
	}

	var errs []float64
	for i := range calculated {
		if math.IsNaN(calculated[i]) || math.IsNaN(groundTruth[i]) {
			continue
		}
		errs = append(errs, calculated[i]-groundTruth[i])
	}

	return metricsFromErrors(errs)
}

// ParameterErrorsPerSensor computes the error metrics separately for
// every sensor present in both inputs.
func ParameterErrorsPerSensor(calculated, groundTruth map[string][]float64) (map[string]ErrorMetrics, error) {
	common := commonSensors(calculated, groundTruth)
	if len(common) == 0 {
		return nil, ErrNoCommonSensors
	}

	out := make(map[string]ErrorMetrics, len(common))
	for _, name := range common {
		m, err := ParameterErrors(calculated[name], groundTruth[name])
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", name, err)
		}
		out[name] = m
	}

	return out, nil
}

// ParameterErrorsPooled computes the error metrics over the strides of
// all common sensors as one population.
func ParameterErrorsPooled(calculated, groundTruth map[string][]float64) (ErrorMetrics, error) {
	common := commonSensors(calculated, groundTruth)
	if len(common) == 0 {
		return ErrorMetrics{}, ErrNoCommonSensors
	}

	var errs []float64
	for _, name := range common {
		calc, truth := calculated[name], groundTruth[name]
		if len(calc) != len(truth) {
			return ErrorMetrics{}, fmt.Errorf("sensor %s: %w: %d vs %d", name, ErrLengthMismatch, len(calc), len(truth))
		}
		for i := range calc {
			if math.IsNaN(calc[i]) || math.IsNaN(truth[i]) {
				continue
			}
			errs = append(errs, calc[i]-truth[i])
		}
	}

	return metricsFromErrors(errs)
}

func metricsFromErrors(errs []float64) (ErrorMetrics, error) {
	if len(errs) == 0 {
		return ErrorMetrics{}, ErrNoData
	}

	abs := make([]float64, len(errs))
	for i, e := range errs {
		abs[i] = math.Abs(e)
	}

	mean, err := stats.Mean(errs)
	if err != nil {
		return ErrorMetrics{}, fmt.Errorf("evalutils: %w", err)
	}
	absMean, err := stats.Mean(abs)
	if err != nil {
		return ErrorMetrics{}, fmt.Errorf("evalutils: %w", err)
	}
	maxAbs, err := stats.Max(abs)
	if err != nil {
		return ErrorMetrics{}, fmt.Errorf("evalutils: %w", err)
	}

	m := ErrorMetrics{
		MeanError:    mean,
		ErrorStd:     math.NaN(),
		AbsMeanError: absMean,
		AbsErrorStd:  math.NaN(),
		MaxAbsError:  maxAbs,
	}
	if len(errs) > 1 {
		if m.ErrorStd, err = stats.StandardDeviationSample(errs); err != nil {
			return ErrorMetrics{}, fmt.Errorf("evalutils: %w", err)
		}
		if m.AbsErrorStd, err = stats.StandardDeviationSample(abs); err != nil {
			return ErrorMetrics{}, fmt.Errorf("evalutils: %w", err)
		}
	}

	return m, nil
}

func commonSensors(a, b map[string][]float64) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}
