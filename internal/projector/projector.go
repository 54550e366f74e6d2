// Package projector turns the flat generated records into embedded
// Marriage and Death documents.
package projector

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
)

// ErrLookupMiss marks a foreign key with no matching entity. Misses are
// counted and logged; the affected field is left out of the document.
var ErrLookupMiss = errors.New("lookup miss")

// Projector resolves references through id maps built once per dataset.
type Projector struct {
	log *zap.Logger

	persons     map[int]model.Person
	names       map[int]string
	occupations map[int]string
	users       map[int]model.User
	registers   map[int]model.Register
	directors   map[int]model.Director
	celebrants  map[int]model.Celebrant
	officiants  map[int]model.Officiant

	personNames       map[int][]int
	personOccupations map[int][]int
	directorNames     map[int][]int
	celebrantNames    map[int][]int
	officiantNames    map[int][]int
	children          map[int][]int
	witnesses         map[int][]model.Witness

	// first marriage per groom and per bride, keyed by person id
	brideOf map[int]int
	groomOf map[int]int

	marriages []model.Marriage
	deaths    []model.Death
	misses    int
}

func New(ds *generator.Dataset, logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Projector{
		log:               logger,
		persons:           make(map[int]model.Person, len(ds.Persons)),
		names:             make(map[int]string),
		occupations:       make(map[int]string, len(ds.Occupations)),
		users:             make(map[int]model.User, len(ds.Users)),
		registers:         make(map[int]model.Register, len(ds.Registers)),
		directors:         make(map[int]model.Director, len(ds.Directors)),
		celebrants:        make(map[int]model.Celebrant, len(ds.Celebrants)),
		officiants:        make(map[int]model.Officiant, len(ds.Officiants)),
		personNames:       make(map[int][]int),
		personOccupations: make(map[int][]int),
		directorNames:     make(map[int][]int),
		celebrantNames:    make(map[int][]int),
		officiantNames:    make(map[int][]int),
		children:          make(map[int][]int),
		witnesses:         make(map[int][]model.Witness),
		brideOf:           make(map[int]int),
		groomOf:           make(map[int]int),
		marriages:         ds.Marriages,
		deaths:            ds.Deaths,
	}

	for _, person := range ds.Persons {
		p.persons[person.ID] = person
		if person.MotherID != nil {
			p.children[*person.MotherID] = append(p.children[*person.MotherID], person.ID)
		}
		if person.FatherID != nil {
			p.children[*person.FatherID] = append(p.children[*person.FatherID], person.ID)
		}
	}
	for _, n := range ds.Names() {
		p.names[n.ID] = n.Name
	}
	for _, o := range ds.Occupations {
		p.occupations[o.ID] = o.Name
	}
	for _, u := range ds.Users {
		p.users[u.ID] = u
	}
	for _, r := range ds.Registers {
		p.registers[r.ID] = r
	}
	for _, d := range ds.Directors {
		p.directors[d.ID] = d
	}
	for _, c := range ds.Celebrants {
		p.celebrants[c.ID] = c
	}
	for _, o := range ds.Officiants {
		p.officiants[o.ID] = o
	}
	for _, pn := range ds.PersonNames {
		p.personNames[pn.PersonID] = append(p.personNames[pn.PersonID], pn.NameID)
	}
	for _, po := range ds.PersonOccupations {
		p.personOccupations[po.PersonID] = append(p.personOccupations[po.PersonID], po.OccupationID)
	}
	for _, n := range ds.DirectorNames {
		p.directorNames[n.OwnerID] = append(p.directorNames[n.OwnerID], n.NameID)
	}
	for _, n := range ds.CelebrantNames {
		p.celebrantNames[n.OwnerID] = append(p.celebrantNames[n.OwnerID], n.NameID)
	}
	for _, n := range ds.OfficiantNames {
		p.officiantNames[n.OwnerID] = append(p.officiantNames[n.OwnerID], n.NameID)
	}
	for _, w := range ds.Witnesses {
		p.witnesses[w.MarriageID] = append(p.witnesses[w.MarriageID], w)
	}
	for _, m := range ds.Marriages {
		if _, ok := p.brideOf[m.GroomID]; !ok {
			p.brideOf[m.GroomID] = m.BrideID
		}
		if _, ok := p.groomOf[m.BrideID]; !ok {
			p.groomOf[m.BrideID] = m.GroomID
		}
	}

	return p
}

// Misses is the number of unresolved references seen so far.
func (p *Projector) Misses() int { return p.misses }

func (p *Projector) miss(entity string, id int) {
	p.misses++
	p.log.Debug(ErrLookupMiss.Error(), zap.String("entity", entity), zap.Int("id", id))
}

// Project builds every marriage and death document.
func (p *Projector) Project() ([]MarriageDocument, []DeathDocument) {
	marriages := make([]MarriageDocument, 0, len(p.marriages))
	for _, m := range p.marriages {
		marriages = append(marriages, p.Marriage(m))
	}

	deaths := make([]DeathDocument, 0, len(p.deaths))
	for _, d := range p.deaths {
		deaths = append(deaths, p.Death(d))
	}

	if p.misses > 0 {
		p.log.Warn("unresolved references left out of documents", zap.Int("misses", p.misses))
	}
	return marriages, deaths
}

func (p *Projector) resolveNames(entity string, ids []int) []string {
	var out []string
	for _, id := range ids {
		name, ok := p.names[id]
		if !ok {
			p.miss(entity, id)
			continue
		}
		out = append(out, name)
	}
	return out
}

func (p *Projector) resolveOccupations(ids []int) []string {
	var out []string
	for _, id := range ids {
		name, ok := p.occupations[id]
		if !ok {
			p.miss(model.TableOccupation, id)
			continue
		}
		out = append(out, name)
	}
	return out
}

// person resolves id into a document with names and occupations. With
// parents set, father and mother are embedded one level up.
func (p *Projector) person(id int, parents bool) *PersonDocument {
	person, ok := p.persons[id]
	if !ok {
		p.miss(model.TablePerson, id)
		return nil
	}

	doc := &PersonDocument{
		ID:          person.ID,
		Surname:     person.Surname,
		Village:     person.Village,
		Street:      person.Street,
		Descr:       person.Descr,
		Birth:       person.Birth,
		Sex:         string(person.Sex),
		Religion:    person.Religion,
		Name:        p.resolveNames(model.TableName, p.personNames[id]),
		Occupations: p.resolveOccupations(p.personOccupations[id]),
	}
	if parents {
		doc.Father = p.optionalPerson(person.FatherID)
		doc.Mother = p.optionalPerson(person.MotherID)
	}
	return doc
}

func (p *Projector) optionalPerson(id *int) *PersonDocument {
	if id == nil {
		return nil
	}
	return p.person(*id, false)
}

func (p *Projector) register(id int) *RegisterDocument {
	r, ok := p.registers[id]
	if !ok {
		p.miss(model.TableRegister, id)
		return nil
	}
	return &RegisterDocument{ID: r.ID, Archive: r.Archive, Fond: r.Fond, Signature: r.Signature}
}

func (p *Projector) user(id int) *UserDocument {
	u, ok := p.users[id]
	if !ok {
		p.miss(model.TableUser, id)
		return nil
	}
	return &UserDocument{ID: u.ID, Name: u.Name}
}

func (p *Projector) Marriage(m model.Marriage) MarriageDocument {
	doc := MarriageDocument{
		ID:           m.ID,
		RecReady:     m.RecReady,
		RecOrder:     m.RecOrder,
		ScanOrder:    m.ScanOrder,
		ScanLayout:   m.ScanLayout,
		Date:         m.Date,
		Village:      m.Village,
		GroomY:       m.GroomAge.Years,
		GroomM:       m.GroomAge.Months,
		GroomD:       m.GroomAge.Days,
		BrideY:       m.BrideAge.Years,
		BrideM:       m.BrideAge.Months,
		BrideD:       m.BrideAge.Days,
		GroomAdult:   m.GroomAdult,
		BrideAdult:   m.BrideAdult,
		Relationship: m.Relationship,
		Banns1:       m.Banns1,
		Banns2:       m.Banns2,
		Banns3:       m.Banns3,
		Register:     p.register(m.RegisterID),
		User:         p.user(m.UserID),
		Groom:        p.person(m.GroomID, true),
		Bride:        p.person(m.BrideID, true),
	}

	if o, ok := p.officiants[m.OfficiantID]; ok {
		doc.Officiant = &OfficiantDocument{
			ID:      o.ID,
			Surname: o.Surname,
			Title:   o.Title,
			Name:    p.resolveNames(model.TableOfficiantName, p.officiantNames[o.ID]),
		}
	} else {
		p.miss(model.TableOfficiant, m.OfficiantID)
	}

	for _, w := range p.witnesses[m.ID] {
		person := p.person(w.PersonID, false)
		if person == nil {
			continue
		}
		doc.Witnesses = append(doc.Witnesses, WitnessDocument{
			Side:           w.Side,
			Relationship:   w.Relationship,
			PersonDocument: *person,
		})
	}

	return doc
}

func (p *Projector) Death(d model.Death) DeathDocument {
	doc := DeathDocument{
		ID:            d.ID,
		RecReady:      d.RecReady,
		RecOrder:      d.RecOrder,
		ScanOrder:     d.ScanOrder,
		ScanLayout:    d.ScanLayout,
		ProvisionDate: d.ProvisionDate,
		DeathDate:     d.DeathDate,
		FuneralDate:   d.FuneralDate,
		DeathVillage:  d.Village,
		DeathStreet:   d.Street,
		DeathDescr:    d.Descr,
		PlaceFuneral:  d.PlaceFuneral,
		PlaceDeath:    d.PlaceDeath,
		Widowed:       d.Widowed,
		AgeY:          d.Age.Years,
		AgeM:          d.Age.Months,
		AgeD:          d.Age.Days,
		AgeH:          d.AgeHours,
		DeathCause:    d.Cause,
		Inspection:    d.Inspection,
		InspectionBy:  d.InspectionBy,
		Notes:         d.Notes,
		Register:      p.register(d.RegisterID),
		User:          p.user(d.UserID),
		Person:        p.person(d.PersonID, false),
	}

	if dir, ok := p.directors[d.DirectorID]; ok {
		doc.Director = &DirectorDocument{
			ID:      dir.ID,
			Surname: dir.Surname,
			Title:   dir.Title,
			Name:    p.resolveNames(model.TableDirectorName, p.directorNames[dir.ID]),
		}
	} else {
		p.miss(model.TableDirector, d.DirectorID)
	}

	if c, ok := p.celebrants[d.CelebrantID]; ok {
		doc.Celebrant = &CelebrantDocument{
			ID:         c.ID,
			Surname:    c.Surname,
			TitleOccup: c.Title,
			Name:       p.resolveNames(model.TableCelebrantName, p.celebrantNames[c.ID]),
		}
	} else {
		p.miss(model.TableCelebrant, d.CelebrantID)
	}

	person, ok := p.persons[d.PersonID]
	if !ok {
		return doc
	}

	doc.Father = p.optionalPerson(person.FatherID)
	doc.Mother = p.optionalPerson(person.MotherID)

	spouses := p.brideOf
	if person.Sex == model.Female {
		spouses = p.groomOf
	}
	if spouseID, married := spouses[person.ID]; married {
		doc.BrideGroom = p.person(spouseID, false)
	}

	for _, kidID := range p.children[person.ID] {
		if kid := p.person(kidID, false); kid != nil {
			doc.Kids = append(doc.Kids, *kid)
		}
	}

	return doc
}
