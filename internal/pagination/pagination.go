package pagination

import (
	"errors"
	"time"

	"github.com/schoolkv/schoolkv/internal/metrics"
)

// ErrInvalidPage is returned when page or page size is not a positive
// integer
var ErrInvalidPage = errors.New("page and page_size must be positive integers")

// HyperPage is a page of the dataset together with hypermedia-style
// navigation fields. NextPage and PrevPage are null when there is no
// page in that direction.
type HyperPage struct {
	PageSize   int        `json:"page_size"`
	Page       int        `json:"page"`
	Data       [][]string `json:"data"`
	NextPage   *int       `json:"next_page"`
	PrevPage   *int       `json:"prev_page"`
	TotalPages int        `json:"total_pages"`
}

// IndexRange converts a 1-indexed page and page size into half-open
// slice bounds [start, end)
func IndexRange(page, pageSize int) (start, end int) {
	start = (page - 1) * pageSize
	end = page * pageSize
	return start, end
}

// GetPage returns the rows of the requested page. Pages start at 1. A
// page past the end of the dataset is an empty slice, not an error.
func (p *Pager) GetPage(page, pageSize int) ([][]string, error) {
	start := time.Now()

	rows, err := p.getPage(page, pageSize)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.PageRequests.WithLabelValues(status).Inc()
	metrics.PageRequestDuration.Observe(time.Since(start).Seconds())

	return rows, err
}

func (p *Pager) getPage(page, pageSize int) ([][]string, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPage
	}

	records, err := p.dataset()
	if err != nil {
		return nil, err
	}

	start, end := IndexRange(page, pageSize)
	if start >= len(records) {
		return [][]string{}, nil
	}
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], nil
}

// GetHyper returns the requested page wrapped in a HyperPage. PageSize
// reflects the number of rows actually returned, which is smaller than
// the requested size on the last page.
func (p *Pager) GetHyper(page, pageSize int) (*HyperPage, error) {
	data, err := p.GetPage(page, pageSize)
	if err != nil {
		return nil, err
	}

	records, err := p.dataset()
	if err != nil {
		return nil, err
	}
	totalPages := (len(records) + pageSize - 1) / pageSize

	hp := &HyperPage{
		PageSize:   len(data),
		Page:       page,
		Data:       data,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		hp.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		hp.PrevPage = &prev
	}
	return hp, nil
}
