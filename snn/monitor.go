package snn

// SpikeEvent records one spike: when it happened and which unit fired.
type SpikeEvent struct {
	TimeMs float64 `json:"time_ms"`
	Unit   int     `json:"unit"`
}

// SpikeMonitor accumulates the spike count of one population over a run,
// and optionally the full event trace for post-processing. It is attached
// for the whole run and read only after the run completes.
type SpikeMonitor struct {
	population string
	count      int
	record     bool
	events     []SpikeEvent
}

// NewSpikeMonitor creates a monitor for the named population. When record
// is true the monitor keeps every (time, unit) event, not just the count.
func NewSpikeMonitor(population string, record bool) *SpikeMonitor {
	return &SpikeMonitor{population: population, record: record}
}

// Observe accumulates the spikes emitted by one step.
func (m *SpikeMonitor) Observe(nowMs float64, spikes []int) {
	m.count += len(spikes)
	if m.record {
		for _, unit := range spikes {
			m.events = append(m.events, SpikeEvent{TimeMs: nowMs, Unit: unit})
		}
	}
}

// Population returns the name of the monitored population.
func (m *SpikeMonitor) Population() string { return m.population }

// Count returns the total number of spikes observed so far.
func (m *SpikeMonitor) Count() int { return m.count }

// Events returns the recorded trace, or nil when recording was off.
func (m *SpikeMonitor) Events() []SpikeEvent { return m.events }
