// Package evalutils compares algorithm output against a reference:
// stride lists against ground-truth stride borders, and calculated
// gait parameters against ground-truth parameters.
//
// # Stride matching
//
// MatchStrideLists pairs strides one-to-one: two strides match when
// both their start and end samples agree within a tolerance. When
// several candidates fit, the closest pair wins. Unmatched calculated
// strides are false positives, unmatched reference strides false
// negatives; Scores derives precision, recall and F1 from the match.
//
// # Parameter errors
//
// ParameterErrors computes five metrics over the per-stride difference
// between calculated and ground-truth values: mean error, error
// standard deviation, absolute mean error, absolute error standard
// deviation and maximal absolute error. Standard deviations are sample
// deviations. Pairs with a NaN on either side are dropped.
// ParameterErrorsPerSensor keeps sensors separate, while
// ParameterErrorsPooled treats all strides as one population.
package evalutils
