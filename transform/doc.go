// Package transform provides estimator-style scalers for IMU signals,
// e.g. to normalize data before template matching.
//
// A Transformer consumes a Signal and returns a scaled copy; trainable
// transformers additionally learn their scaling parameters from a set
// of training signals via Fit (the scikit-learn fit/transform split).
//
// Available scalers:
//
//   - Identity        — passes data through unchanged
//   - Fixed           — y = (x − offset) / scale
//   - AbsMax          — y = x · featureMax / max(|x|)
//   - TrainableAbsMax — AbsMax with max(|x|) learned from training data
//   - MinMax          — maps the global data range onto a feature range
//   - TrainableMinMax — MinMax with the data range learned from training data
//   - Grouped         — applies different transformers to axis groups
//
// Note that AbsMax and MinMax derive a single global factor over all
// axes of the signal, so relative amplitudes between axes are
// preserved. Use Grouped for per-axis-group scaling.
package transform
