package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed *.txt *.yaml
var LevelsFS embed.FS

const CatalogFile = "levels.yaml"

// Entry is one catalog row.
type Entry struct {
	Level int    `yaml:"level"`
	Name  string `yaml:"name"`
	Map   string `yaml:"map"`
	Spawn [2]int `yaml:"spawn"` // x, z
}

// Catalog maps level numbers to their maps.
type Catalog struct {
	Levels []Entry `yaml:"levels"`
}

// Load reads a file from levels/ on disk, falling back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskLevelPath(cleanLevelPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// LoadCatalog reads and validates levels.yaml.
func LoadCatalog() (*Catalog, error) {
	data, err := Load(CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("levels: load catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("levels: unmarshal catalog: %w", err)
	}
	seen := make(map[int]bool, len(c.Levels))
	for _, e := range c.Levels {
		if e.Level <= 0 {
			return nil, fmt.Errorf("levels: catalog: level number %d must be positive", e.Level)
		}
		if seen[e.Level] {
			return nil, fmt.Errorf("levels: catalog: duplicate level %d", e.Level)
		}
		if e.Map == "" {
			return nil, fmt.Errorf("levels: catalog: level %d has no map", e.Level)
		}
		seen[e.Level] = true
	}
	return &c, nil
}

// Entry returns the catalog row for level n.
func (c *Catalog) Entry(n int) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	for _, e := range c.Levels {
		if e.Level == n {
			return e, true
		}
	}
	return Entry{}, false
}

// Next returns the level after n, or false after the last one.
func (c *Catalog) Next(n int) (int, bool) {
	best := 0
	for _, e := range c.Levels {
		if e.Level > n && (best == 0 || e.Level < best) {
			best = e.Level
		}
	}
	return best, best != 0
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}

// LoadMap reads and parses the map for a catalog entry.
func LoadMap(e Entry) (*Map, error) {
	data, err := Load(e.Map)
	if err != nil {
		return nil, fmt.Errorf("levels: load map %s: %w", e.Map, err)
	}
	m, err := ParseMap(string(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", e.Map, err)
	}
	return m, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
