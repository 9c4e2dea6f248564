package analysis

import (
	"errors"
	"math"
)

var (
	ErrTooShort = errors.New("analysis: need at least two samples")
	ErrLength   = errors.New("analysis: times and values differ in length")
)

// SettlingBand is the relative band used for settling time.
const SettlingBand = 0.02

// StepInfo holds step-response characteristics. Peak is the extreme value
// in the direction of the change. Times are NaN when the response never
// reaches the corresponding level.
type StepInfo struct {
	Initial      float64
	Final        float64
	Peak         float64
	PeakTime     float64
	Overshoot    float64 // percent of the total change
	RiseTime     float64 // 10% to 90% of the total change
	SettlingTime float64
}

// Step analyzes y sampled at times, taking the last sample as the steady
// state value.
func Step(times, y []float64) (StepInfo, error) {
	if len(times) != len(y) {
		return StepInfo{}, ErrLength
	}
	if len(y) < 2 {
		return StepInfo{}, ErrTooShort
	}

	info := StepInfo{
		Initial:      y[0],
		Final:        y[len(y)-1],
		RiseTime:     math.NaN(),
		SettlingTime: math.NaN(),
	}
	change := info.Final - info.Initial
	dir := 1.0
	if change < 0 {
		dir = -1
	}

	info.Peak, info.PeakTime = y[0], times[0]
	for k, v := range y {
		if dir*(v-info.Peak) > 0 {
			info.Peak, info.PeakTime = v, times[k]
		}
	}

	if change == 0 {
		return info, nil
	}

	if over := dir * (info.Peak - info.Final); over > 0 {
		info.Overshoot = 100 * over / math.Abs(change)
	}

	lo := info.Initial + 0.1*change
	hi := info.Initial + 0.9*change
	tLo, tHi := math.NaN(), math.NaN()
	for k, v := range y {
		if math.IsNaN(tLo) && dir*(v-lo) >= 0 {
			tLo = times[k]
		}
		if math.IsNaN(tHi) && dir*(v-hi) >= 0 {
			tHi = times[k]
			break
		}
	}
	if !math.IsNaN(tLo) && !math.IsNaN(tHi) {
		info.RiseTime = tHi - tLo
	}

	band := SettlingBand * math.Abs(change)
	settled := len(y) - 1
	for k := len(y) - 1; k >= 0; k-- {
		if math.Abs(y[k]-info.Final) > band {
			break
		}
		settled = k
	}
	// Settling is only meaningful if the band holds for more than the final sample.
	if settled < len(y)-1 {
		info.SettlingTime = times[settled]
	}
	return info, nil
}
