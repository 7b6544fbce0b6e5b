package signalproc

import "fmt"

// Autocorrelation computes the raw (non-normalized) autocorrelation of
// x for lags 0..maxLag:
//
//	r[l] = Σ_i x[i] · x[i+l]
//
// This matches the one-sided tail of a full linear cross-correlation of
// the signal with itself.
func Autocorrelation(x []float64, maxLag int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if maxLag < 0 || maxLag >= len(x) {
		return nil, fmt.Errorf("%w: max lag %d for %d samples", ErrBadLag, maxLag, len(x))
	}
	out := make([]float64, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		sum := 0.0
		for i := 0; i+lag < len(x); i++ {
			sum += x[i] * x[i+lag]
		}
		out[lag] = sum
	}

	return out, nil
}

// RowWiseAutocorrelation applies Autocorrelation to every row of a
// signal matrix, e.g. to all windows of a windowed recording at once.
func RowWiseAutocorrelation(rows [][]float64, maxLag int) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		ac, err := Autocorrelation(r, maxLag)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = ac
	}

	return out, nil
}
