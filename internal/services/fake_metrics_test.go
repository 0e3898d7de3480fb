package services

import (
	"sync"
	"time"
)

type recordedGauge struct {
	value float64
	tags  map[string]string
}

// recordingMetrics keeps every call so tests can assert on what was published
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]float64
	timings  map[string][]time.Duration
	gauges   map[string][]recordedGauge
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters: make(map[string]float64),
		timings:  make(map[string][]time.Duration),
		gauges:   make(map[string][]recordedGauge),
	}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *recordingMetrics) AddCounter(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[counterKey(name, tags)] += value
}

func (m *recordingMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], duration)
}

func (m *recordingMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = append(m.gauges[name], recordedGauge{value: value, tags: tags})
}

func (m *recordingMetrics) counter(name string, tags map[string]string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[counterKey(name, tags)]
}

func (m *recordingMetrics) lastGauge(name string) (recordedGauge, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	values := m.gauges[name]
	if len(values) == 0 {
		return recordedGauge{}, false
	}
	return values[len(values)-1], true
}

// counterKey only supports the single-label tags the services emit
func counterKey(name string, tags map[string]string) string {
	for k, v := range tags {
		return name + "{" + k + "=" + v + "}"
	}
	return name
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
