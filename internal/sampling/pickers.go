package sampling

import (
	"math/rand"

	"github.com/Rana718/vitalgen/internal/model"
)

// Picker wraps a random source with the threshold draws used across the
// generator. Every threshold is compared against a fresh uniform [0,1) draw.
type Picker struct {
	rnd *rand.Rand
}

func NewPicker(rnd *rand.Rand) *Picker {
	return &Picker{rnd: rnd}
}

func (p *Picker) Float() float64 { return p.rnd.Float64() }

// Above reports whether a fresh draw exceeds threshold.
func (p *Picker) Above(threshold float64) bool { return p.rnd.Float64() > threshold }

// Intn draws uniformly from [0,n).
func (p *Picker) Intn(n int) int { return p.rnd.Intn(n) }

// Between draws uniformly from [lo,hi].
func (p *Picker) Between(lo, hi int) int { return lo + p.rnd.Intn(hi-lo+1) }

// Sex is a fair coin between the two sexes.
func (p *Picker) Sex() model.Sex {
	if p.Above(0.5) {
		return model.Male
	}
	return model.Female
}

// ScanLayout: 'C' half the time, otherwise 'L' or 'P' by a second draw.
func (p *Picker) ScanLayout() string {
	if p.rnd.Float64() < 0.5 {
		return "C"
	}
	if p.Above(0.7) {
		return "L"
	}
	return "P"
}

func (p *Picker) ScanFlags() model.ScanFlags {
	return model.ScanFlags{
		RecReady:   p.Above(0.2),
		RecOrder:   p.rnd.Intn(1000),
		ScanOrder:  p.rnd.Intn(1000),
		ScanLayout: p.ScanLayout(),
	}
}

// Religion is the unconditioned draw: half unbaptized, then 80/20
// catholic/evangelic.
func (p *Picker) Religion() string {
	return p.religion(0.5)
}

// FirstGenerationReligion is the father's draw: 30% unbaptized.
func (p *Picker) FirstGenerationReligion() string {
	return p.religion(0.7)
}

func (p *Picker) religion(unbaptized float64) string {
	if p.Above(unbaptized) {
		return model.ReligionUnbaptized
	}
	if p.Above(0.2) {
		return model.ReligionCatholic
	}
	return model.ReligionEvangelic
}

var kinship = map[int]string{
	95: "strýc-neteř",
	96: "sourozenci",
	97: "bratranec-sestřenice 1. stupně",
	98: "bratranec-sestřenice 2. stupně",
	99: "polosourozenci",
}

// Kinship picks one of 100 equal buckets; only the top five name a relation.
func (p *Picker) Kinship() string {
	if label, ok := kinship[p.rnd.Intn(100)]; ok {
		return label
	}
	return model.NoRelationship
}

// WitnessRelationship: sibling above 0.6, otherwise friend below 0.3 on a
// second draw, otherwise other.
func (p *Picker) WitnessRelationship() string {
	if p.Above(0.6) {
		return "sourozenec"
	}
	if p.rnd.Float64() < 0.3 {
		return "přítel"
	}
	return "jiné"
}
