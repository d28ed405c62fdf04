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

package clip

// buffer is a stream which records lines, for clipping polygon rings
// before they are reconnected.
type buffer struct {
	lines [][]vertex
}

func (b *buffer) Point(x, y, z float64) {
	n := len(b.lines)
	if n == 0 {
		return
	}
	b.lines[n-1] = append(b.lines[n-1], vertex{x, y, z})
}

func (b *buffer) LineStart() {
	b.lines = append(b.lines, nil)
}

func (b *buffer) LineEnd()      {}
func (b *buffer) PolygonStart() {}
func (b *buffer) PolygonEnd()   {}
func (b *buffer) Sphere()       {}

// rejoin merges the last line with the first one.
func (b *buffer) rejoin() {
	n := len(b.lines)
	if n < 2 {
		return
	}
	joined := append(b.lines[n-1], b.lines[0]...)
	lines := make([][]vertex, 0, n-1)
	lines = append(lines, b.lines[1:n-1]...)
	b.lines = append(lines, joined)
}

// result returns the recorded lines and clears the buffer.
func (b *buffer) result() [][]vertex {
	res := b.lines
	b.lines = nil
	return res
}
