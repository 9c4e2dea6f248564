// Package analysis characterizes recorded time responses.
//
// [Step] extracts the classical step-response figures from an output
// series: final value, peak and overshoot, 10-90% rise time and 2%
// settling time.
//
//	info, err := analysis.Step(res.Times, res.Output(0))
//	if err == nil && info.Overshoot > 20 {
//	    // underdamped
//	}
package analysis
