package evalutils_test

import (
	"fmt"

	"github.com/gaitkit/gaitkit/evalutils"
	"github.com/gaitkit/gaitkit/imu"
)

// ExampleMatchStrideLists compares a detected stride list against a
// reference annotation and scores the detection.
func ExampleMatchStrideLists() {
	detected := []imu.Stride{
		{ID: 0, Start: 10, End: 110},
		{ID: 1, Start: 112, End: 210},
		{ID: 2, Start: 400, End: 500},
	}
	reference := []imu.Stride{
		{ID: 0, Start: 10, End: 110},
		{ID: 1, Start: 110, End: 210},
		{ID: 2, Start: 600, End: 700},
	}

	m, err := evalutils.MatchStrideLists(detected, reference, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := m.Scores()
	fmt.Printf("tp=%d fp=%d fn=%d\n", len(m.TruePositives), len(m.FalsePositives), len(m.FalseNegatives))
	fmt.Printf("precision=%.2f recall=%.2f f1=%.2f\n", s.Precision, s.Recall, s.F1)
	// Output:
	// tp=2 fp=1 fn=1
	// precision=0.67 recall=0.67 f1=0.67
}

// ExampleParameterErrors summarizes how far calculated stride lengths
// deviate from a reference system.
func ExampleParameterErrors() {
	calculated := []float64{125, 131, 118} // cm
	reference := []float64{121, 134, 119}

	m, err := evalutils.ParameterErrors(calculated, reference)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.3f abs_mean=%.3f max=%.3f\n", m.MeanError, m.AbsMeanError, m.MaxAbsError)
	// Output:
	// mean=0.000 abs_mean=2.667 max=4.000
}
