package metrics

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Counter names exposed by a Collector.
const (
	Opens         = "confmanager_opens_total"
	Saves         = "confmanager_saves_total"
	Applies       = "confmanager_applies_total"
	ParseWarnings = "confmanager_parse_warnings_total"
	DuplicateKeys = "confmanager_duplicate_keys_total"
	IOErrors      = "confmanager_io_errors_total"
)

var help = map[string]string{
	Opens:         "Config files opened successfully.",
	Saves:         "Config files saved successfully.",
	Applies:       "ApplyModified merges performed.",
	ParseWarnings: "Malformed line fragments skipped during load.",
	DuplicateKeys: "Duplicate keys dropped during load.",
	IOErrors:      "File operations that failed.",
}

// Collector counts config store operations. A nil *Collector is valid: Inc
// becomes a no-op, so the store can run without metrics wired.
//
// Collector is safe for concurrent use; the metrics HTTP handler may read
// while the owning store mutates.
type Collector struct {
	mu     sync.Mutex
	counts map[string]float64
}

// NewCollector returns a Collector with all known counters present at zero,
// so the exposition always lists the full set.
func NewCollector() *Collector {
	counts := make(map[string]float64, len(help))
	for name := range help {
		counts[name] = 0
	}
	return &Collector{counts: counts}
}

// Inc adds one to the named counter.
func (c *Collector) Inc(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.counts[name]++
	c.mu.Unlock()
}

// Value returns the current value of the named counter.
func (c *Collector) Value(name string) float64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}

// WriteText encodes all counters to w in the Prometheus text exposition
// format, sorted by name.
func (c *Collector) WriteText(w io.Writer) error {
	c.mu.Lock()
	snapshot := make(map[string]float64, len(c.counts))
	for name, v := range c.counts {
		snapshot[name] = v
	}
	c.mu.Unlock()

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mf := &dto.MetricFamily{
			Name: proto.String(name),
			Help: proto.String(help[name]),
			Type: dto.MetricType_COUNTER.Enum(),
			Metric: []*dto.Metric{{
				Counter: &dto.Counter{Value: proto.Float64(snapshot[name])},
			}},
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", name, err)
		}
	}
	return nil
}

// Handler returns an http.Handler serving the text exposition, suitable for
// mounting at /metrics.
func (c *Collector) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
		if err := c.WriteText(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
