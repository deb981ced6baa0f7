// Package risk maps a 0-100 risk score to a display category. The
// score itself is synthetic; see the roster package.
package risk

type Category string

const (
	Low    Category = "low"
	Medium Category = "medium"
	High   Category = "high"
)

// Classify partitions [0,100] into three bands: >70 high, 40-70
// medium, <40 low.
func Classify(score int) Category {
	switch {
	case score > 70:
		return High
	case score >= 40:
		return Medium
	}
	return Low
}

// Color returns the bar color used for this category on the
// dashboards. It must stay consistent with Classify's bands.
func (c Category) Color() string {
	switch c {
	case High:
		return "red"
	case Medium:
		return "yellow"
	}
	return "green"
}
