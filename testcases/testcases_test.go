// seehuhn.de/go/carto - cartographic projections and geometry streams
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

package testcases

import (
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			full := category + "_" + tc.Name
			if seen[full] {
				t.Errorf("duplicate test case %s", full)
			}
			seen[full] = true
		}
	}
}

func TestPathsInsideCanvas(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			p := tc.Path()
			if p == nil {
				t.Errorf("%s_%s: empty path", category, tc.Name)
				continue
			}
			const slack = 1e-6
			for _, c := range p.Coords {
				if c.X < -slack || c.Y < -slack || c.X > float64(tc.Width)+slack || c.Y > float64(tc.Height)+slack {
					t.Errorf("%s_%s: point %v outside the canvas", category, tc.Name, c)
					break
				}
			}
		}
	}
}
