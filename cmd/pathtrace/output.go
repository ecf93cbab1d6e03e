// seehuhn.de/go/motion - path-following animation geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"seehuhn.de/go/motion"
)

// sampleRecord is one position along the path.
type sampleRecord struct {
	Alpha    float64  `json:"alpha"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation *float64 `json:"rotation,omitempty"`
}

// sample queries s at steps+1 evenly spaced fractions, including both
// end points.
func sample(s *motion.Sampler, steps int, tangent bool) []sampleRecord {
	res := make([]sampleRecord, 0, steps+1)
	for i := 0; i <= steps; i++ {
		alpha := float64(i) / float64(steps)
		pos := s.PositionAt(alpha, tangent)
		rec := sampleRecord{Alpha: alpha, X: pos.X, Y: pos.Y}
		if tangent {
			rot := pos.Rotation
			rec.Rotation = &rot
		}
		res = append(res, rec)
	}
	return res
}

func writeJSON(w io.Writer, length float64, samples []sampleRecord) error {
	out := struct {
		Length  float64        `json:"length"`
		Samples []sampleRecord `json:"samples"`
	}{
		Length:  length,
		Samples: samples,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, samples []sampleRecord) error {
	tangent := len(samples) > 0 && samples[0].Rotation != nil

	cw := csv.NewWriter(w)
	header := []string{"alpha", "x", "y"}
	if tangent {
		header = append(header, "rotation")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	format := func(x float64) string {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	for _, rec := range samples {
		row := []string{format(rec.Alpha), format(rec.X), format(rec.Y)}
		if rec.Rotation != nil {
			row = append(row, format(*rec.Rotation))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
