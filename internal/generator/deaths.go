package generator

import (
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/sampling"
)

const (
	placeDrowned  = "v řece Svitavě u Bilovic"
	placeHospital = "nemocnice"
	causeMeasles  = "osýpky"
	causePhthisis = "souchotiny"
	noteSwapped   = "chyba zápisu, prohozené rubriky"
	noteGeneric   = "poznámky..."
	inspectorA    = "Dr. Hrachovina"
	inspectorB    = "Dr. Nováček"
)

// deriveDeaths pops eligible persons off a stack so nobody dies twice.
func (g *Generator) deriveDeaths(pools *Pools, pop *Population) ([]model.Death, error) {
	stack := pop.Eligible("")

	target := len(stack)
	if g.cfg.Deaths >= 0 {
		target = g.cfg.Deaths
	}
	if target == 0 {
		return nil, nil
	}
	if target > len(stack) {
		g.exhausted("deaths", len(stack), target)
		target = len(stack)
	}
	if target == 0 {
		return nil, nil
	}

	users, err := sampling.NewIndexSequence(g.rnd, len(pools.Users))
	if err != nil {
		return nil, err
	}
	registers, err := sampling.NewIndexSequence(g.rnd, len(pools.Registers))
	if err != nil {
		return nil, err
	}
	directors, err := sampling.NewIndexSequence(g.rnd, len(pools.Directors))
	if err != nil {
		return nil, err
	}
	celebrants, err := sampling.NewIndexSequence(g.rnd, len(pools.Celebrants))
	if err != nil {
		return nil, err
	}
	causes, err := sampling.NewIndexSequence(g.rnd, len(g.corpus.DeathCauses))
	if err != nil {
		return nil, err
	}

	deaths := make([]model.Death, 0, target)
	for i := 0; i < target; i++ {
		person := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		date := person.Birth.AddYears(g.pick.Intn(100))

		d := model.Death{
			ID:           i,
			ScanFlags:    g.pick.ScanFlags(),
			Village:      person.Village,
			Street:       person.Street,
			Descr:        person.Descr,
			PlaceFuneral: person.Village,
			Widowed:      g.pick.Above(0.7),
			Age:          sampling.AgeAt(person.Birth, date),
			AgeHours:     g.pick.Intn(24),
			Inspection:   g.pick.Above(0.7),
			PersonID:     person.ID,
			UserID:       pools.Users[users.Next()].ID,
			RegisterID:   pools.Registers[registers.Next()].ID,
			DirectorID:   pools.Directors[directors.Next()].ID,
			CelebrantID:  pools.Celebrants[celebrants.Next()].ID,
		}

		if g.pick.Above(0.5) {
			d.Village = pools.Villages[g.pick.Intn(len(pools.Villages))]
		}
		if d.Village != person.Village {
			d.Street = g.corpus.Streets[g.pick.Intn(len(g.corpus.Streets))]
			d.Descr = g.pick.Between(1, 250)
		}

		if p := g.pick.Float(); p > 0.8 {
			d.PlaceDeath = placeHospital
			if p > 0.9 {
				d.PlaceDeath = placeDrowned
			}
		}

		if c := g.pick.Float(); c > 0.5 {
			switch {
			case c > 0.9:
				d.Cause = causeMeasles
			case c > 0.7:
				d.Cause = causePhthisis
			default:
				d.Cause = g.corpus.DeathCauses[causes.Next()]
			}
		}

		if n := g.pick.Float(); n > 0.9 {
			d.Notes = noteSwapped
			if n > 0.95 {
				d.Notes = noteGeneric
			}
		}

		if g.pick.Above(0.7) {
			d.ProvisionDate = model.DatePtr(date)
		} else {
			d.DeathDate = model.DatePtr(date)
			d.FuneralDate = model.DatePtr(date.AddDays(2))
		}

		if d.Inspection {
			d.InspectionBy = inspectorB
			if g.pick.Above(0.6) {
				d.InspectionBy = inspectorA
			}
		}

		deaths = append(deaths, d)
	}

	return deaths, nil
}
