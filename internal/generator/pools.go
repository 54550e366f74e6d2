package generator

import (
	"fmt"

	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/sampling"
)

// Pools are the lookup collections every later stage references by id.
type Pools struct {
	Users          []model.User
	Registers      []model.Register
	MenNames       []model.Name
	WomenNames     []model.Name
	Occupations    []model.Occupation
	Directors      []model.Director
	DirectorNames  []model.OfficialName
	Celebrants     []model.Celebrant
	CelebrantNames []model.OfficialName
	Officiants     []model.Officiant
	OfficiantNames []model.OfficialName
	Villages       []string
}

// Names is the combined name space, male names first.
func (p *Pools) Names() []model.Name {
	names := make([]model.Name, 0, len(p.MenNames)+len(p.WomenNames))
	names = append(names, p.MenNames...)
	return append(names, p.WomenNames...)
}

func (g *Generator) BuildPools() (*Pools, error) {
	c := g.corpus
	p := &Pools{}

	for i := 0; i < g.cfg.Users; i++ {
		first, last := c.NamesMen, c.SurnamesMen
		if g.pick.Sex() == model.Female {
			first, last = c.NamesWomen, c.SurnamesWomen
		}
		p.Users = append(p.Users, model.User{
			ID:   i,
			Name: first[g.pick.Intn(len(first))] + " " + last[g.pick.Intn(len(last))],
		})
	}

	for i := 0; i < g.cfg.Archives; i++ {
		for j := 0; j < g.cfg.Fonds; j++ {
			for k := 0; k < g.cfg.Signatures; k++ {
				p.Registers = append(p.Registers, model.Register{
					ID:        i*g.cfg.Fonds*g.cfg.Signatures + j*g.cfg.Signatures + k,
					Archive:   fmt.Sprintf("ARCH%d", i),
					Fond:      fmt.Sprintf("FOND%d", j),
					Signature: k,
				})
			}
		}
	}

	for i, name := range c.NamesMen {
		p.MenNames = append(p.MenNames, model.Name{ID: i, Name: name})
	}
	for i, name := range c.NamesWomen {
		p.WomenNames = append(p.WomenNames, model.Name{ID: len(c.NamesMen) + i, Name: name})
	}

	occupations := min(g.cfg.Occupations, len(c.Occupations))
	for i, idx := range g.rnd.Perm(len(c.Occupations))[:occupations] {
		p.Occupations = append(p.Occupations, model.Occupation{ID: i, Name: c.Occupations[idx]})
	}

	p.Villages = append(p.Villages, c.Villages[:min(g.cfg.Villages, len(c.Villages))]...)
	if len(p.Villages) == 0 {
		return nil, fmt.Errorf("%w: no villages configured", sampling.ErrInvalidArgument)
	}

	directors, err := g.officials(g.cfg.Directors, c.DirectorTitles)
	if err != nil {
		return nil, fmt.Errorf("directors: %w", err)
	}
	for _, o := range directors {
		p.Directors = append(p.Directors, model.Director{Official: o.Official})
		p.DirectorNames = append(p.DirectorNames, model.NewDirectorName(o.ID, o.nameID))
	}

	celebrants, err := g.officials(g.cfg.Celebrants, c.CelebrantTitles)
	if err != nil {
		return nil, fmt.Errorf("celebrants: %w", err)
	}
	for _, o := range celebrants {
		p.Celebrants = append(p.Celebrants, model.Celebrant{Official: o.Official})
		p.CelebrantNames = append(p.CelebrantNames, model.NewCelebrantName(o.ID, o.nameID))
	}

	officiants, err := g.officials(g.cfg.Officiants, c.OfficiantTitles)
	if err != nil {
		return nil, fmt.Errorf("officiants: %w", err)
	}
	for _, o := range officiants {
		p.Officiants = append(p.Officiants, model.Officiant{Official: o.Official})
		p.OfficiantNames = append(p.OfficiantNames, model.NewOfficiantName(o.ID, o.nameID))
	}

	return p, nil
}

type official struct {
	model.Official
	nameID int
}

// officials draws count men with distinct surnames while the surname pool
// lasts, each linked to one male name.
func (g *Generator) officials(count int, titles []string) ([]official, error) {
	surnames, err := sampling.NewIndexSequence(g.rnd, len(g.corpus.SurnamesMen))
	if err != nil {
		return nil, err
	}
	titleSeq, err := sampling.NewIndexSequence(g.rnd, len(titles))
	if err != nil {
		return nil, err
	}
	names, err := sampling.NewIndexSequence(g.rnd, len(g.corpus.NamesMen))
	if err != nil {
		return nil, err
	}

	out := make([]official, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, official{
			Official: model.Official{
				ID:      i,
				Surname: g.corpus.SurnamesMen[surnames.Next()],
				Title:   titles[titleSeq.Next()],
			},
			nameID: names.Next(),
		})
	}
	return out, nil
}
