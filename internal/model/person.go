package model

type Sex string

const (
	Male   Sex = "muž"
	Female Sex = "žena"
)

const (
	ReligionCatholic   = "katolík"
	ReligionEvangelic  = "evangelík"
	ReligionUnbaptized = "nepokřtěn"
)

type Person struct {
	ID       int
	Surname  string
	Village  string
	Street   string
	Descr    int
	Birth    Date
	Sex      Sex
	Religion string
	MotherID *int
	FatherID *int
}

// HasBothParents reports whether the person may marry or die in the dataset.
func (p Person) HasBothParents() bool {
	return p.MotherID != nil && p.FatherID != nil
}

func (p Person) Entity() string { return TablePerson }

func (p Person) Fields() []Field {
	return fieldList{}.
		add("_id_person", p.ID).
		add("surname", p.Surname).
		add("village", p.Village).
		add("street", p.Street).
		add("descr", p.Descr).
		add("birth", p.Birth).
		add("sex", string(p.Sex)).
		add("religion", p.Religion).
		addIntPtr("mother_id", p.MotherID).
		addIntPtr("father_id", p.FatherID)
}

type PersonName struct {
	PersonID int
	NameID   int
}

func (n PersonName) Entity() string { return TablePersonName }

func (n PersonName) Fields() []Field {
	return fieldList{}.add("person_id", n.PersonID).add("name_id", n.NameID)
}

type PersonOccupation struct {
	PersonID     int
	OccupationID int
}

func (o PersonOccupation) Entity() string { return TablePersonOccupation }

func (o PersonOccupation) Fields() []Field {
	return fieldList{}.add("person_id", o.PersonID).add("occup_id", o.OccupationID)
}

// IntPtr is a helper for optional foreign keys.
func IntPtr(v int) *int { return &v }
