package pagination

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// DefaultDatasetFile is the CSV file served when none is configured
const DefaultDatasetFile = "Popular_Baby_Names.csv"

// Pager serves pages of a CSV dataset. The file is read once, on the
// first request, and kept in memory; the header row is not part of the
// data.
type Pager struct {
	mu      sync.Mutex
	path    string
	records [][]string
}

// NewPager creates a Pager for the dataset at path. The file is not
// opened until the first page is requested.
func NewPager(path string) *Pager {
	if path == "" {
		path = DefaultDatasetFile
	}
	return &Pager{path: path}
}

// dataset returns the cached records, loading them on first use. A
// failed load is not cached so a later request can retry.
func (p *Pager) dataset() ([][]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.records != nil {
		return p.records, nil
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	// Drop the header row
	if len(rows) > 0 {
		rows = rows[1:]
	}
	if rows == nil {
		rows = [][]string{}
	}

	p.records = rows
	return p.records, nil
}
