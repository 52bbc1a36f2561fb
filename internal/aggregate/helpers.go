package aggregate

import (
	"math"
	"sort"
	"strings"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// round2 rounds to two decimal places, the display contract for per-match
// averages.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place, used for percentage-of-total shares.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percentOf returns round(part/total*100) as an integer, 0 when total is
// not positive.
func percentOf(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// counter accumulates occurrence counts while remembering first-encounter
// order so that ties rank deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// add counts one occurrence of name; blank values are noise and ignored.
func (c *counter) add(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// entries returns all counted values sorted by count descending, ties in
// first-encountered order. n > 0 truncates to the top n.
func (c *counter) entries(n int) []UsageEntry {
	out := make([]UsageEntry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, UsageEntry{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// top returns the modal value, or "" when nothing was counted.
func (c *counter) top() string {
	e := c.entries(1)
	if len(e) == 0 {
		return ""
	}
	return e[0].Name
}

// imageIndex maps trimmed, lower-cased dimension names to image URLs for
// the case-insensitive cross-referencing used by event decoration. The
// first occurrence of a name wins.
type imageIndex map[string]string

func newImageIndex(dims []model.Dimension) imageIndex {
	idx := make(imageIndex, len(dims))
	for _, d := range dims {
		key := strings.ToLower(strings.TrimSpace(d.Name))
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = d.Image
		}
	}
	return idx
}

// lookup resolves an image for a name; a miss yields the empty string.
func (idx imageIndex) lookup(name string) string {
	if name == "" {
		return ""
	}
	return idx[strings.ToLower(strings.TrimSpace(name))]
}
