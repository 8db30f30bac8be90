package ocv

import "sync"

// SweepEntry is the outcome of one temperature in a sweep. Err carries any
// per-temperature failure; a temperature with no stable phases is not an
// error, it just has an empty OCV curve.
type SweepEntry struct {
	TemperatureK float64
	Result       *Result
	Err          error
}

// Sweep runs the pipeline at each temperature. The queries share only the
// read-only surface, so they run concurrently; results come back in input
// order.
func (p *Pipeline) Sweep(tempsK []float64) []SweepEntry {
	entries := make([]SweepEntry, len(tempsK))
	var wg sync.WaitGroup
	for i, t := range tempsK {
		wg.Add(1)
		go func(i int, t float64) {
			defer wg.Done()
			res, err := p.Run(t)
			entries[i] = SweepEntry{TemperatureK: t, Result: res, Err: err}
		}(i, t)
	}
	wg.Wait()
	return entries
}
