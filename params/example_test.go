package params_test

import (
	"fmt"
	"math"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/params"
)

// ExampleTemporal derives stride, swing and stance times from two
// annotated min_vel strides at 100 Hz.
func ExampleTemporal() {
	events := []imu.StrideEvents{
		{ID: 0, Start: 0, End: 100, MinVel: 0, TC: 30, IC: 54, PreIC: math.NaN()},
		{ID: 1, Start: 100, End: 200, MinVel: 100, TC: 130, IC: 154, PreIC: 54},
	}

	tp, err := params.Temporal(events, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range tp {
		fmt.Printf("stride %d: stride=%.2f swing=%.2f stance=%.2f\n",
			p.ID, p.StrideTime, p.SwingTime, p.StanceTime)
	}
	// Output:
	// stride 0: stride=NaN swing=0.24 stance=NaN
	// stride 1: stride=1.00 swing=0.24 stance=0.76
}
