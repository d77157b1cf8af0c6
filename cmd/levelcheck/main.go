package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/milk9111/bloxroll/levels"
	"github.com/milk9111/bloxroll/prefabs"
)

var glyphs = map[levels.TileType]byte{
	levels.TileEmpty:     '.',
	levels.TileNormal:    '#',
	levels.TileGoal:      'G',
	levels.TileFragile:   '~',
	levels.TileSeparator: 'S',
	levels.TileOButton:   'O',
	levels.TileXButton:   'X',
}

func main() {
	verbose := flag.Bool("v", false, "print each map")
	only := flag.Int("level", 0, "check only this level")
	flag.Parse()

	catalog, err := levels.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	tiles, err := prefabs.LoadTilesSpec()
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, e := range catalog.Levels {
		if *only != 0 && e.Level != *only {
			continue
		}
		m, err := levels.LoadMap(e)
		if err == nil {
			err = levels.Check(e, m)
		}
		if err == nil {
			err = checkPrefabs(tiles, m)
		}
		if err != nil {
			failed++
			fmt.Printf("level %d (%s): FAIL %v\n", e.Level, e.Map, err)
			continue
		}
		fmt.Printf("level %d (%s): ok, %dx%d\n", e.Level, e.Map, m.Width, m.Depth)
		if *verbose {
			fmt.Print(render(m, e.Spawn))
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func checkPrefabs(tiles *prefabs.TilesSpec, m *levels.Map) error {
	var err error
	m.Each(func(x, z int, t levels.TileType) {
		if err != nil || !t.Solid() {
			return
		}
		if _, ok := tiles.Tile(t); !ok {
			err = fmt.Errorf("%w: %s at (%d, %d)", prefabs.ErrMissingPrefab, t, x, z)
		}
	})
	return err
}

// render draws the map with z = 0 on the bottom row and the spawn as '@'.
func render(m *levels.Map, spawn [2]int) string {
	var b strings.Builder
	for z := m.Depth - 1; z >= 0; z-- {
		b.WriteString("  ")
		for x := 0; x < m.Width; x++ {
			g, ok := glyphs[m.At(x, z)]
			if !ok {
				g = '?'
			}
			if x == spawn[0] && z == spawn[1] {
				g = '@'
			}
			b.WriteByte(g)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
