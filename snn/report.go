package snn

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Result is the immutable outcome of one completed run: the scenario label,
// the seed, the resolved parameters, and the per-population spike counts.
// Event traces are present only when the network was built with recording.
type Result struct {
	Scenario string `json:"scenario"`
	Seed     int64  `json:"seed"`
	Params   Params `json:"params"`

	InputSpikes      int `json:"input_spikes"`
	AfferentSpikes   int `json:"afferent_spikes"`
	CerebellarSpikes int `json:"cerebellar_spikes"`

	InputEvents      []SpikeEvent `json:"-"`
	AfferentEvents   []SpikeEvent `json:"-"`
	CerebellarEvents []SpikeEvent `json:"-"`
}

// Print writes the run summary to stdout. The scenario label always leads,
// so counts are never ambiguous about which configuration produced them.
func (r *Result) Print() {
	fmt.Printf("Scenario: %s\n", r.Scenario)
	fmt.Printf("Input spikes     : %d\n", r.InputSpikes)
	fmt.Printf("Afferent spikes  : %d\n", r.AfferentSpikes)
	fmt.Printf("Cerebellar spikes: %d\n", r.CerebellarSpikes)
}

// Save persists the result under dir, creating it if absent: a JSON summary
// always, and a spike-event CSV when traces were recorded.
func (r *Result) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	stem := fmt.Sprintf("%s_seed%d", r.Scenario, r.Seed)
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	summaryPath := filepath.Join(dir, stem+".json")
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", summaryPath, err)
	}

	if r.InputEvents == nil && r.AfferentEvents == nil && r.CerebellarEvents == nil {
		return nil
	}
	return r.saveSpikes(filepath.Join(dir, stem+"_spikes.csv"))
}

func (r *Result) saveSpikes(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"population", "time_ms", "unit"}); err != nil {
		return err
	}
	write := func(population string, events []SpikeEvent) error {
		for _, ev := range events {
			rec := []string{
				population,
				strconv.FormatFloat(ev.TimeMs, 'f', 3, 64),
				strconv.Itoa(ev.Unit),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write(LayerInput, r.InputEvents); err != nil {
		return err
	}
	if err := write(LayerAfferent, r.AfferentEvents); err != nil {
		return err
	}
	if err := write(LayerCerebellar, r.CerebellarEvents); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
