package wordcloud

import (
	"image"
	"math"
)

const (
	spiralAngleStep  = 0.1
	spiralRadiusStep = 2.0
)

// occupancyMap tracks used pixels with a summed-area table so that any
// rectangle can be tested for overlap in constant time
type occupancyMap struct {
	width, height int
	used          []bool
	// sums has (width+1)*(height+1) entries; sums[y][x] counts used pixels above and left of (x,y)
	sums []int32
}

func newOccupancyMap(width, height int) *occupancyMap {
	return &occupancyMap{
		width:  width,
		height: height,
		used:   make([]bool, width*height),
		sums:   make([]int32, (width+1)*(height+1)),
	}
}

func (m *occupancyMap) sumAt(x, y int) int32 {
	return m.sums[y*(m.width+1)+x]
}

// free reports whether the w x h box with top-left (x,y) lies inside the
// canvas and covers no used pixel
func (m *occupancyMap) free(x, y, w, h int) bool {
	if x < 0 || y < 0 || x+w > m.width || y+h > m.height {
		return false
	}
	total := m.sumAt(x+w, y+h) - m.sumAt(x, y+h) - m.sumAt(x+w, y) + m.sumAt(x, y)
	return total == 0
}

// fill marks rect as used and rebuilds the table
func (m *occupancyMap) fill(rect image.Rectangle) {
	rect = rect.Intersect(image.Rect(0, 0, m.width, m.height))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := y * m.width
		for x := rect.Min.X; x < rect.Max.X; x++ {
			m.used[row+x] = true
		}
	}
	m.rebuild()
}

func (m *occupancyMap) rebuild() {
	stride := m.width + 1
	for y := 0; y < m.height; y++ {
		var rowSum int32
		for x := 0; x < m.width; x++ {
			if m.used[y*m.width+x] {
				rowSum++
			}
			m.sums[(y+1)*stride+x+1] = m.sums[y*stride+x+1] + rowSum
		}
	}
}

// find walks an Archimedean spiral out from the canvas centre and returns the
// top-left corner of the first free w x h box
func (m *occupancyMap) find(w, h int) (image.Point, bool) {
	if w > m.width || h > m.height {
		return image.Point{}, false
	}

	cx := float64(m.width-w) / 2
	cy := float64(m.height-h) / 2
	// Squash the spiral vertically to follow the canvas aspect ratio.
	aspect := float64(m.height) / float64(m.width)
	maxRadius := math.Hypot(float64(m.width), float64(m.height)/aspect) / 2

	for theta := 0.0; ; theta += spiralAngleStep {
		r := spiralRadiusStep * theta
		if r > maxRadius {
			return image.Point{}, false
		}
		x := int(math.Round(cx + r*math.Cos(theta)))
		y := int(math.Round(cy + r*math.Sin(theta)*aspect))
		if m.free(x, y, w, h) {
			return image.Point{X: x, Y: y}, true
		}
	}
}
