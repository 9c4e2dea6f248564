// Package export writes recorded runs as JSON, CSV or rendered plots.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/linsim/internal/linalg"
)

var ErrEmpty = errors.New("export: no samples")

type Data struct {
	Name        string             `json:"name"`
	Numerator   []float64          `json:"numerator,omitempty"`
	Denominator []float64          `json:"denominator,omitempty"`
	Integrator  string             `json:"integrator,omitempty"`
	Dt          float64            `json:"dt"`
	MaxTime     float64            `json:"max_time"`
	Steps       int                `json:"steps"`
	Times       []float64          `json:"times"`
	States      [][]float64        `json:"states"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

// NewData fills Times, States and Steps from a trajectory.
func NewData(name string, times []float64, states []linalg.Vector) Data {
	d := Data{
		Name:   name,
		Steps:  len(times),
		Times:  times,
		States: make([][]float64, len(states)),
	}
	for i, s := range states {
		d.States[i] = s
	}
	if len(times) > 1 {
		d.Dt = times[1] - times[0]
		d.MaxTime = times[len(times)-1]
	}
	return d
}

func WriteJSON(w io.Writer, data Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per sample: time followed by the state components.
func WriteCSV(w io.Writer, times []float64, states []linalg.Vector) error {
	if len(times) != len(states) {
		return fmt.Errorf("export: %d times for %d states", len(times), len(states))
	}

	cw := csv.NewWriter(w)
	if len(states) > 0 {
		header := []string{"time"}
		for i := range states[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for k, x := range states {
		row := make([]string, 0, len(x)+1)
		row = append(row, strconv.FormatFloat(times[k], 'g', -1, 64))
		for _, v := range x {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
