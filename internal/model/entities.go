package model

// Table names of the relational schema.
const (
	TableUser             = "User"
	TableRegister         = "Register"
	TableName             = "Name"
	TableOccupation       = "Occupation"
	TableDirector         = "Director"
	TableDirectorName     = "DirectorName"
	TableCelebrant        = "Celebrant"
	TableCelebrantName    = "CelebrantName"
	TableOfficiant        = "Officiant"
	TableOfficiantName    = "OfficiantName"
	TablePerson           = "Person"
	TablePersonName       = "PersonName"
	TablePersonOccupation = "PersonOccupation"
	TableMarriage         = "Marriage"
	TableWitness          = "Witness"
	TableDeath            = "Death"
)

type User struct {
	ID   int
	Name string
}

func (u User) Entity() string { return TableUser }

func (u User) Fields() []Field {
	return fieldList{}.add("_id_user", u.ID).add("name", u.Name)
}

type Register struct {
	ID        int
	Archive   string
	Fond      string
	Signature int
}

func (r Register) Entity() string { return TableRegister }

func (r Register) Fields() []Field {
	return fieldList{}.
		add("_id_register", r.ID).
		add("archive", r.Archive).
		add("fond", r.Fond).
		add("signature", r.Signature)
}

// Name is a first name. Male names come first in the id space, female
// names are offset by the size of the male pool.
type Name struct {
	ID   int
	Name string
}

func (n Name) Entity() string { return TableName }

func (n Name) Fields() []Field {
	return fieldList{}.add("_id_name", n.ID).add("name", n.Name)
}

type Occupation struct {
	ID   int
	Name string
}

func (o Occupation) Entity() string { return TableOccupation }

func (o Occupation) Fields() []Field {
	return fieldList{}.add("_id_occup", o.ID).add("name", o.Name)
}

// Official is the shared shape of directors, celebrants and officiants.
type Official struct {
	ID      int
	Surname string
	Title   string
}

type Director struct{ Official }

func (d Director) Entity() string { return TableDirector }

func (d Director) Fields() []Field {
	return fieldList{}.add("_id_director", d.ID).add("surname", d.Surname).add("title", d.Title)
}

type Celebrant struct{ Official }

func (c Celebrant) Entity() string { return TableCelebrant }

func (c Celebrant) Fields() []Field {
	return fieldList{}.add("_id_celebrant", c.ID).add("surname", c.Surname).add("title_occup", c.Title)
}

type Officiant struct{ Official }

func (o Officiant) Entity() string { return TableOfficiant }

func (o Officiant) Fields() []Field {
	return fieldList{}.add("_id_officiant", o.ID).add("surname", o.Surname).add("title", o.Title)
}

// OfficialName links a director, celebrant or officiant to a Name.
type OfficialName struct {
	table    string
	idColumn string
	OwnerID  int
	NameID   int
}

func NewDirectorName(directorID, nameID int) OfficialName {
	return OfficialName{table: TableDirectorName, idColumn: "director_id", OwnerID: directorID, NameID: nameID}
}

func NewCelebrantName(celebrantID, nameID int) OfficialName {
	return OfficialName{table: TableCelebrantName, idColumn: "celebrant_id", OwnerID: celebrantID, NameID: nameID}
}

func NewOfficiantName(officiantID, nameID int) OfficialName {
	return OfficialName{table: TableOfficiantName, idColumn: "officiant_id", OwnerID: officiantID, NameID: nameID}
}

func (n OfficialName) Entity() string { return n.table }

func (n OfficialName) Fields() []Field {
	return fieldList{}.add(n.idColumn, n.OwnerID).add("name_id", n.NameID)
}
