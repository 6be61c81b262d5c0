package commands

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rcannood/incgraph/network"
)

// loadEdges reads 1-based "i,j" pairs from a CSV file. Blank lines and a
// leading "i,j" header are tolerated.
func loadEdges(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open edges file %q", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse edges file %q", path)
	}

	edges := make([][2]int, 0, len(records))
	for _, rec := range records {
		i, errI := strconv.Atoi(rec[0])
		j, errJ := strconv.Atoi(rec[1])
		if errI != nil || errJ != nil {
			continue // header row or malformed line
		}
		edges = append(edges, [2]int{i, j})
	}
	return edges, nil
}

// buildFacade constructs a Facade from the --nodes/--edges-file flags.
func buildFacade() (*network.Facade, error) {
	var edges [][2]int
	if edgesFile != "" {
		var err error
		edges, err = loadEdges(edgesFile)
		if err != nil {
			return nil, err
		}
	}

	opts := []network.Option{network.WithLogger(newLogger())}

	if len(edges) > 0 {
		return network.NewFromEdges(edges, opts...)
	}
	if nodesFlag <= 0 {
		return nil, errors.New("--nodes must be positive when --edges-file is empty")
	}
	return network.New(nodesFlag, opts...)
}
