package model

// PipelineInputs represents a canonical "inputs to the system" object: the
// sample table plus the external reference energy and grid resolutions.
// Temperature is deliberately not part of this; it is a per-query parameter.
type PipelineInputs struct {
	Table *SampleTable
	// ELiBulk is the reference energy of bulk lithium metal in eV/atom.
	// Supplied by configuration; there is no sensible default.
	ELiBulk float64
	// Npts is the formation-energy grid resolution (points over x in [0,1]).
	Npts int
	// Ngrid is the voltage grid resolution.
	Ngrid int
	// HullTol is the tolerance for the lower-hull vertex filter: a facet is
	// kept when every vertex has formation energy <= HullTol.
	HullTol float64
}
