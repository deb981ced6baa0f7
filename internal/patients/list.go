// Package patients implements the doctor dashboard list operations:
// filtering, the two sort orders, and manual reordering.
package patients

import (
	"errors"
	"sort"
	"strings"

	"github.com/cradlecare/cradle/internal/model"
)

var ErrBadIndex = errors.New("reorder index out of range")

// SortKey selects one of the two total orders offered by the dashboard.
type SortKey string

const (
	SortByRisk SortKey = "risk"
	SortByDate SortKey = "date"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByRisk, SortByDate:
		return SortKey(s), true
	}
	return "", false
}

// Filter returns the patients whose name contains query,
// case-insensitive. An empty query returns the list unchanged in order.
func Filter(list []model.Patient, query string) []model.Patient {
	if query == "" {
		return list
	}

	q := strings.ToLower(query)
	out := make([]model.Patient, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders the list descending by the given key. Risk compares
// numerically; dates compare as strings, which matches chronological
// order because exam dates are zero-padded ISO YYYY-MM-DD.
func Sort(list []model.Patient, key SortKey) {
	switch key {
	case SortByRisk:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Risk > list[j].Risk
		})
	case SortByDate:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].LastExam > list[j].LastExam
		})
	}
}

// Reorder removes the item at from and reinserts it at to, producing a
// new order. Manual order is an independent override: it lasts only
// until the next filter or sort recompute.
func Reorder(list []model.Patient, from, to int) ([]model.Patient, error) {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return nil, ErrBadIndex
	}

	out := make([]model.Patient, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)

	moved := list[from]
	out = append(out[:to], append([]model.Patient{moved}, out[to:]...)...)
	return out, nil
}
