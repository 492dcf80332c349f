package scenario

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/mapfile"
)

// Scenario is a batch of queries against one map, for example:
//
//	map: maps/arena.txt
//	queries:
//	  - name: corner-to-corner
//	    from: [0, 0]
//	    to: [31, 31]
type Scenario struct {
	// Map is a map file path, relative to the scenario file.
	Map string `yaml:"map,omitempty"`
	// Grid holds inline rows; used when Map is empty.
	Grid    []string `yaml:"grid,omitempty"`
	Queries []Query  `yaml:"queries"`
}

type Query struct {
	Name string `yaml:"name"`
	From []int  `yaml:"from"`
	To   []int  `yaml:"to"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scenario %s", path)
	}
	if s.Map != "" && !filepath.IsAbs(s.Map) {
		s.Map = filepath.Join(filepath.Dir(path), s.Map)
	}
	return s, nil
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to decode yaml")
	}
	if s.Map == "" && len(s.Grid) == 0 {
		return nil, errors.New("either map or grid must be set")
	}
	if s.Map != "" && len(s.Grid) > 0 {
		return nil, errors.New("map and grid are mutually exclusive")
	}
	for i, q := range s.Queries {
		if len(q.From) != 2 || len(q.To) != 2 {
			return nil, errors.Errorf("query %d (%s): from and to need two coordinates", i, q.Name)
		}
	}
	return &s, nil
}

// LoadGrid returns the scenario's grid from its map file or inline rows.
func (s *Scenario) LoadGrid() (*gridsearch.Grid, error) {
	if s.Map != "" {
		return mapfile.Load(s.Map)
	}
	return mapfile.DecodeRows(s.Grid)
}

// SearchQueries converts the scenario queries, naming unnamed ones by index.
func (s *Scenario) SearchQueries() []gridsearch.Query {
	queries := make([]gridsearch.Query, 0, len(s.Queries))
	for i, q := range s.Queries {
		name := q.Name
		if name == "" {
			name = "query-" + strconv.Itoa(i)
		}
		queries = append(queries, gridsearch.Query{
			Name:   name,
			Source: gridsearch.Cell{X: q.From[0], Y: q.From[1]},
			Target: gridsearch.Cell{X: q.To[0], Y: q.To[1]},
		})
	}
	return queries
}
