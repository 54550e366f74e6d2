package generator

import (
	"strings"

	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/sampling"
)

const feminineSuffix = "ová"

var (
	parentsBand = [2]model.Date{model.MustParseDate("1800-01-01"), model.MustParseDate("1810-01-01")}
	middleBand  = [2]model.Date{model.MustParseDate("1825-01-01"), model.MustParseDate("1840-01-01")}
	kidsBand    = [2]model.Date{model.MustParseDate("1855-01-01"), model.MustParseDate("1870-01-01")}
)

// Population is the person graph with its name and occupation links.
type Population struct {
	Persons           []model.Person
	PersonNames       []model.PersonName
	PersonOccupations []model.PersonOccupation
}

// Eligible returns the persons with both parents recorded, in population order.
func (p *Population) Eligible(sex model.Sex) []model.Person {
	var out []model.Person
	for _, person := range p.Persons {
		if person.HasBothParents() && (sex == "" || person.Sex == sex) {
			out = append(out, person)
		}
	}
	return out
}

func feminine(surname string) string {
	return surname + feminineSuffix
}

// masculine strips a trailing feminine suffix. Other surnames pass through.
func masculine(surname string) string {
	return strings.TrimSuffix(surname, feminineSuffix)
}

type address struct {
	village string
	street  string
	descr   int
}

type personBuilder struct {
	g        *Generator
	pools    *Pools
	persons  []model.Person
	men      *sampling.IndexSequence
	women    *sampling.IndexSequence
	villages *sampling.IndexSequence
}

func (b *personBuilder) add(p model.Person) model.Person {
	p.ID = len(b.persons)
	b.persons = append(b.persons, p)
	return p
}

func (b *personBuilder) address() address {
	streets := b.g.corpus.Streets
	return address{
		village: b.pools.Villages[b.villages.Next()],
		street:  streets[b.g.pick.Intn(len(streets))],
		descr:   b.g.pick.Between(1, 250),
	}
}

func (b *personBuilder) birth(band [2]model.Date) (model.Date, error) {
	return sampling.RandomDateBetween(b.g.rnd, band[0], band[1])
}

func (b *personBuilder) person(a address, surname string, sex model.Sex, religion string, band [2]model.Date) (model.Person, error) {
	birth, err := b.birth(band)
	if err != nil {
		return model.Person{}, err
	}
	return model.Person{
		Surname:  surname,
		Village:  a.village,
		Street:   a.street,
		Descr:    a.descr,
		Birth:    birth,
		Sex:      sex,
		Religion: religion,
	}, nil
}

// triad appends mother, father, their child and maybe the child's kids.
func (b *personBuilder) triad() error {
	pick := b.g.pick
	home := b.address()

	sex := pick.Sex()
	var surname, motherSurname, fatherSurname string
	if sex == model.Male {
		surname = b.g.corpus.SurnamesMen[b.men.Next()]
		motherSurname, fatherSurname = feminine(surname), surname
	} else {
		surname = b.g.corpus.SurnamesWomen[b.women.Next()]
		motherSurname, fatherSurname = surname, masculine(surname)
	}

	random := pick.Religion()
	fatherReligion := pick.FirstGenerationReligion()
	motherReligion := random
	if pick.Above(0.2) {
		motherReligion = fatherReligion
	}
	religion := motherReligion
	if pick.Above(0.5) {
		religion = fatherReligion
	}

	mother, err := b.person(home, motherSurname, model.Female, motherReligion, parentsBand)
	if err != nil {
		return err
	}
	mother = b.add(mother)

	father, err := b.person(home, fatherSurname, model.Male, fatherReligion, parentsBand)
	if err != nil {
		return err
	}
	father = b.add(father)

	child, err := b.person(home, surname, sex, religion, middleBand)
	if err != nil {
		return err
	}
	child.MotherID = model.IntPtr(mother.ID)
	child.FatherID = model.IntPtr(father.ID)
	child = b.add(child)

	if !pick.Above(0.5) {
		return nil
	}

	kids := pick.Between(1, 4)
	for i := 0; i < kids; i++ {
		kidSex := pick.Sex()
		kidSurname := surname
		if kidSex != sex {
			if kidSex == model.Female {
				kidSurname = feminine(surname)
			} else {
				kidSurname = masculine(surname)
			}
		}

		kidHome := home
		if !pick.Above(0.2) {
			kidHome = b.address()
		}

		kidReligion := model.ReligionUnbaptized
		if pick.Above(0.2) {
			kidReligion = religion
		}

		kid, err := b.person(kidHome, kidSurname, kidSex, kidReligion, kidsBand)
		if err != nil {
			return err
		}
		if sex == model.Female {
			kid.MotherID = model.IntPtr(child.ID)
		} else {
			kid.FatherID = model.IntPtr(child.ID)
		}
		b.add(kid)
	}
	return nil
}

// GeneratePopulation emits whole triads until the persons target is met,
// so the final count may overshoot it by one triad.
func (g *Generator) GeneratePopulation(pools *Pools) (*Population, error) {
	b := &personBuilder{g: g, pools: pools}

	var err error
	if b.men, err = sampling.NewIndexSequence(g.rnd, len(g.corpus.SurnamesMen)); err != nil {
		return nil, err
	}
	if b.women, err = sampling.NewIndexSequence(g.rnd, len(g.corpus.SurnamesWomen)); err != nil {
		return nil, err
	}
	if b.villages, err = sampling.NewIndexSequence(g.rnd, len(pools.Villages)); err != nil {
		return nil, err
	}

	target := g.cfg.PersonsTarget()
	for len(b.persons) < target {
		if err := b.triad(); err != nil {
			return nil, err
		}
	}

	return g.Populate(pools, b.persons)
}

// Populate attaches names and occupations to an existing person list.
func (g *Generator) Populate(pools *Pools, persons []model.Person) (*Population, error) {
	pop := &Population{Persons: persons}

	men, err := sampling.NewIndexSequence(g.rnd, len(pools.MenNames))
	if err != nil {
		return nil, err
	}
	women, err := sampling.NewIndexSequence(g.rnd, len(pools.WomenNames))
	if err != nil {
		return nil, err
	}

	for _, p := range persons {
		if p.Sex == model.Male {
			pop.PersonNames = append(pop.PersonNames, model.PersonName{PersonID: p.ID, NameID: pools.MenNames[men.Next()].ID})
			if g.pick.Above(0.7) {
				pop.PersonNames = append(pop.PersonNames, model.PersonName{PersonID: p.ID, NameID: pools.MenNames[men.Next()].ID})
			}
		} else {
			pop.PersonNames = append(pop.PersonNames, model.PersonName{PersonID: p.ID, NameID: pools.WomenNames[women.Next()].ID})
		}
	}

	if len(pools.Occupations) == 0 {
		return pop, nil
	}
	for _, p := range persons {
		if !g.pick.Above(0.2) {
			continue
		}
		seq, err := sampling.NewIndexSequence(g.rnd, len(pools.Occupations))
		if err != nil {
			return nil, err
		}
		count := g.pick.Between(1, 3)
		for j := 0; j < count; j++ {
			pop.PersonOccupations = append(pop.PersonOccupations, model.PersonOccupation{
				PersonID:     p.ID,
				OccupationID: pools.Occupations[seq.Next()].ID,
			})
		}
	}

	return pop, nil
}
