package generator

import (
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/sampling"
)

const witnessesPerMarriage = 4

// marriageTarget lets roughly a fifth of brides marry twice.
func (g *Generator) marriageTarget(brides int) int {
	if g.cfg.Marriages >= 0 {
		return g.cfg.Marriages
	}
	return brides * 6 / 5
}

func (g *Generator) deriveMarriages(pools *Pools, pop *Population) ([]model.Marriage, []model.Witness, error) {
	grooms := pop.Eligible(model.Male)
	brides := pop.Eligible(model.Female)

	target := g.marriageTarget(len(brides))
	if target == 0 {
		return nil, nil, nil
	}
	if len(grooms) == 0 || len(brides) == 0 {
		pool := "grooms"
		if len(brides) == 0 {
			pool = "brides"
		}
		g.exhausted(pool, 0, target)
		return nil, nil, nil
	}

	groomSeq, err := sampling.NewIndexSequence(g.rnd, len(grooms))
	if err != nil {
		return nil, nil, err
	}
	brideSeq, err := sampling.NewIndexSequence(g.rnd, len(brides))
	if err != nil {
		return nil, nil, err
	}
	users, err := sampling.NewIndexSequence(g.rnd, len(pools.Users))
	if err != nil {
		return nil, nil, err
	}
	registers, err := sampling.NewIndexSequence(g.rnd, len(pools.Registers))
	if err != nil {
		return nil, nil, err
	}
	officiants, err := sampling.NewIndexSequence(g.rnd, len(pools.Officiants))
	if err != nil {
		return nil, nil, err
	}

	marriages := make([]model.Marriage, 0, target)
	witnesses := make([]model.Witness, 0, target*witnessesPerMarriage)

	for i := 0; i < target; i++ {
		groom := grooms[groomSeq.Next()]
		bride := brides[brideSeq.Next()]

		earliest, latest := sampling.OrderedDates(
			groom.Birth.AddYears(g.pick.Between(15, 34)),
			bride.Birth.AddYears(g.pick.Between(15, 34)),
		)
		date, err := sampling.RandomDateBetween(g.rnd, earliest, latest)
		if err != nil {
			return nil, nil, err
		}

		m := model.Marriage{
			ID:           i,
			ScanFlags:    g.pick.ScanFlags(),
			Date:         date,
			Village:      g.marriageVillage(pools, groom, bride),
			GroomAge:     sampling.AgeAt(groom.Birth, date),
			BrideAge:     sampling.AgeAt(bride.Birth, date),
			Relationship: g.pick.Kinship(),
			GroomID:      groom.ID,
			BrideID:      bride.ID,
			UserID:       pools.Users[users.Next()].ID,
			RegisterID:   pools.Registers[registers.Next()].ID,
			OfficiantID:  pools.Officiants[officiants.Next()].ID,
		}
		m.GroomAdult = m.GroomAge.Years >= 18
		m.BrideAdult = m.BrideAge.Years >= 18

		if g.pick.Above(0.5) {
			m.Banns1 = model.DatePtr(date.AddDays(-7))
			if g.pick.Above(0.5) {
				m.Banns2 = model.DatePtr(date.AddDays(-14))
				if g.pick.Above(0.5) {
					m.Banns3 = model.DatePtr(date.AddDays(-21))
				}
			}
		}

		marriages = append(marriages, m)

		for j, w := range g.pickWitnesses(pop.Persons, groom.ID, bride.ID) {
			side := model.SideGroom
			if j > 1 {
				side = model.SideBride
			}
			witnesses = append(witnesses, model.Witness{
				PersonID:     w.ID,
				MarriageID:   m.ID,
				Side:         side,
				Relationship: g.pick.WitnessRelationship(),
			})
		}
	}

	return marriages, witnesses, nil
}

func (g *Generator) marriageVillage(pools *Pools, groom, bride model.Person) string {
	if g.pick.Above(0.5) {
		return pools.Villages[g.pick.Intn(len(pools.Villages))]
	}
	if g.pick.Above(0.5) {
		return groom.Village
	}
	return bride.Village
}

// pickWitnesses draws up to four distinct persons other than the couple.
func (g *Generator) pickWitnesses(persons []model.Person, groomID, brideID int) []model.Person {
	available := 0
	for _, p := range persons {
		if p.ID != groomID && p.ID != brideID {
			available++
		}
	}
	want := min(witnessesPerMarriage, available)

	chosen := make(map[int]bool, want)
	out := make([]model.Person, 0, want)
	for len(out) < want {
		i := g.pick.Intn(len(persons))
		p := persons[i]
		if p.ID == groomID || p.ID == brideID || chosen[i] {
			continue
		}
		chosen[i] = true
		out = append(out, p)
	}
	return out
}
