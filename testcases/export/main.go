// Command export writes the test paths, together with sampled positions,
// to JSON so that other implementations can be checked against them.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/motion"
	"seehuhn.de/go/motion/testcases"
)

const steps = 20

func main() {
	var out struct {
		SmoothZone float64        `json:"smooth_zone"`
		TestCases  []jsonTestCase `json:"testcases"`
	}
	out.SmoothZone = motion.SmoothZone

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/samples.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string         `json:"name"`
	Path      []jsonSegment  `json:"path"`
	CTM       []float64      `json:"ctm,omitempty"`
	Flatness  float64        `json:"flatness,omitempty"`
	Length    float64        `json:"length"`
	Tolerance float64        `json:"tolerance,omitempty"`
	Chain     []jsonLink     `json:"chain"`
	Samples   []jsonPosition `json:"samples"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// jsonLink is one element of the flattened segment chain.
type jsonLink struct {
	MoveTo     bool      `json:"move_to,omitempty"`
	End        []float64 `json:"end"`
	Length     float64   `json:"length"`
	Cumulative float64   `json:"cumulative"`
	Angle      float64   `json:"angle"`
}

type jsonPosition struct {
	Alpha    float64 `json:"alpha"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Path:      pathToJSON(tc.Path),
		Flatness:  tc.Flatness,
		Length:    tc.Length,
		Tolerance: tc.Tolerance,
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	s := motion.NewSampler(tc.Path, tc.CTM, tc.Flatness)
	for seg := range s.Segments() {
		jtc.Chain = append(jtc.Chain, jsonLink{
			MoveTo:     seg.MoveTo,
			End:        []float64{seg.End.X, seg.End.Y},
			Length:     seg.Length,
			Cumulative: seg.CumulativeLength,
			Angle:      seg.Angle,
		})
	}
	for i := 0; i <= steps; i++ {
		alpha := float64(i) / steps
		pos := s.PositionAt(alpha, true)
		jtc.Samples = append(jtc.Samples, jsonPosition{
			Alpha:    alpha,
			X:        pos.X,
			Y:        pos.Y,
			Rotation: pos.Rotation,
		})
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
