package mrb

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a buffer's occupancy as prometheus gauges. Collect
// reads the cursors without synchronization, so it follows the same
// single-producer/single-consumer discipline as every other operation:
// scrape from one of the two sides, or synchronize externally.
type Collector struct {
	b         *Buffer
	capacity  *prometheus.Desc
	used      *prometheus.Desc
	available *prometheus.Desc
}

// NewCollector builds a Collector for b. The name label tells multiple
// registered buffers apart.
func NewCollector(b *Buffer, name string) *Collector {
	labels := prometheus.Labels{"buffer": name}
	return &Collector{
		b: b,
		capacity: prometheus.NewDesc("mrb_capacity_bytes",
			"Logical capacity of the ring buffer.", nil, labels),
		used: prometheus.NewDesc("mrb_used_bytes",
			"Bytes currently buffered.", nil, labels),
		available: prometheus.NewDesc("mrb_available_bytes",
			"Bytes of staging space left.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.used
	ch <- c.available
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.b.Size()))
	ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(c.b.Used()))
	ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue, float64(c.b.Available()))
}
