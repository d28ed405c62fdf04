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

import (
	"slices"

	"seehuhn.de/go/carto"
)

// intersection is a node of the rejoin graph.  Every cut segment
// contributes its two end points twice: once on the subject ring, which
// follows the segments, and once on the clip ring, which follows the clip
// boundary.  Links are indices into the node arena.
type intersection struct {
	x       vertex
	segment int // index into the segment list, or -1 for clip ring nodes
	other   int // the matching node on the other ring
	entry   bool
	visited bool
	next    int
	prev    int
}

// rejoin reconnects the cut segments of a polygon into closed rings along
// the clip boundary and emits the rings to s.
//
// compare orders points along the clip boundary.  startInside tells
// whether the reference point of the clip region lies inside the polygon.
func rejoin(segments [][]vertex, compare func(a, b vertex) float64, startInside bool, interpolate Interpolator, s carto.Stream) {
	var nodes []intersection
	var subject, clip []int

	for i, segment := range segments {
		n := len(segment) - 1
		if n <= 0 {
			continue
		}
		p0, p1 := segment[0], segment[n]

		if pointEqual(p0, p1) {
			if p0.m == 0 && p1.m == 0 {
				s.LineStart()
				for _, p := range segment[:n] {
					s.Point(p.x, p.y, 0)
				}
				s.LineEnd()
				continue
			}
			// move the end point to avoid a zero-length boundary piece
			p1.x += 2 * epsilon
			segment[n] = p1
		}

		k := len(nodes)
		nodes = append(nodes,
			intersection{x: p0, segment: i, other: k + 1, entry: true},
			intersection{x: p0, segment: -1, other: k},
			intersection{x: p1, segment: i, other: k + 3},
			intersection{x: p1, segment: -1, other: k + 2, entry: true},
		)
		subject = append(subject, k, k+2)
		clip = append(clip, k+1, k+3)
	}

	if len(subject) == 0 {
		return
	}

	slices.SortStableFunc(clip, func(a, b int) int {
		d := compare(nodes[a].x, nodes[b].x)
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		default:
			return 0
		}
	})
	link(nodes, subject)
	link(nodes, clip)

	for _, i := range clip {
		startInside = !startInside
		nodes[i].entry = startInside
	}

	start := subject[0]
	for {
		// find the first unvisited subject node
		current := start
		for nodes[current].visited {
			current = nodes[current].next
			if current == start {
				return
			}
		}

		points := segments[nodes[current].segment]
		isSubject := true
		s.LineStart()
		for {
			cur := &nodes[current]
			cur.visited = true
			nodes[cur.other].visited = true

			if cur.entry {
				if isSubject {
					for _, p := range points {
						s.Point(p.x, p.y, 0)
					}
				} else {
					interpolate(cur.x.point(), nodes[cur.next].x.point(), 1, s)
				}
				current = cur.next
			} else {
				if isSubject {
					points = segments[nodes[cur.prev].segment]
					for i := len(points) - 1; i >= 0; i-- {
						s.Point(points[i].x, points[i].y, 0)
					}
				} else {
					interpolate(cur.x.point(), nodes[cur.prev].x.point(), -1, s)
				}
				current = cur.prev
			}

			current = nodes[current].other
			if seg := nodes[current].segment; seg >= 0 {
				points = segments[seg]
			} else {
				points = nil
			}
			isSubject = !isSubject

			if nodes[current].visited {
				break
			}
		}
		s.LineEnd()
	}
}

// link connects the given nodes into a circular doubly linked list, in
// slice order.
func link(nodes []intersection, ring []int) {
	n := len(ring)
	for i, k := range ring {
		nodes[k].next = ring[(i+1)%n]
		nodes[k].prev = ring[(i+n-1)%n]
	}
}
