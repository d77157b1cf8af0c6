package levels

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedMap = errors.New("levels: malformed map")

// Map is a parsed level layout. Cells are row-major: cell (x, z) is
// Cells[z*Width+x].
type Map struct {
	Width int // cells along X
	Depth int // cells along Z
	Cells []TileType
}

// ParseMap reads the text map format: whitespace separated integers, width
// and depth first, then width*depth tile codes. Extra trailing numbers are
// ignored.
func ParseMap(text string) (*Map, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: missing size header", ErrMalformedMap)
	}

	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %v", ErrMalformedMap, i, f, err)
		}
		nums[i] = n
	}

	w, d := nums[0], nums[1]
	if w <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: bad size %dx%d", ErrMalformedMap, w, d)
	}
	data := nums[2:]
	if len(data) < w*d {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrMalformedMap, w*d, len(data))
	}

	m := &Map{Width: w, Depth: d, Cells: make([]TileType, w*d)}
	for i := range m.Cells {
		m.Cells[i] = TileType(data[i])
	}
	return m, nil
}

// At returns the code at (x, z), or TileEmpty outside the map.
func (m *Map) At(x, z int) TileType {
	if m == nil || x < 0 || z < 0 || x >= m.Width || z >= m.Depth {
		return TileEmpty
	}
	return m.Cells[z*m.Width+x]
}

// Each calls fn for every cell in row-major order.
func (m *Map) Each(fn func(x, z int, t TileType)) {
	if m == nil {
		return
	}
	for z := 0; z < m.Depth; z++ {
		for x := 0; x < m.Width; x++ {
			fn(x, z, m.Cells[z*m.Width+x])
		}
	}
}

// Find returns the first cell holding t.
func (m *Map) Find(t TileType) (x, z int, ok bool) {
	m.Each(func(cx, cz int, ct TileType) {
		if !ok && ct == t {
			x, z, ok = cx, cz, true
		}
	})
	return
}
