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
// Command genpdf draws every test path with direction marks, as PDF and
// PNG files, for visual inspection.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/motion"
	"seehuhn.de/go/motion/internal/trace"
	"seehuhn.de/go/motion/testcases"
)

const traceDir = "testdata/trace"

func main() {
	if err := os.MkdirAll(traceDir, 0755); err != nil {
		panic(err)
	}

	opt := &trace.Options{Marks: 16}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			s := motion.NewSampler(tc.Path, tc.CTM, tc.Flatness)

			pdfPath := filepath.Join(traceDir, name+".pdf")
			if err := trace.WritePDF(pdfPath, s, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(traceDir, name+".png")
			if err := writePNG(pngPath, s, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(pngPath string, s *motion.Sampler, opt *trace.Options) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = trace.WritePNG(f, s, opt)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
