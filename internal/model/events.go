package model

// Age is the fixed 365/30 day decomposition used by the registers, not
// calendar arithmetic.
type Age struct {
	Years  int
	Months int
	Days   int
}

// ScanFlags are bookkeeping attributes of a digitised register page.
type ScanFlags struct {
	RecReady   bool
	RecOrder   int
	ScanOrder  int
	ScanLayout string
}

func (f ScanFlags) fields(l fieldList) fieldList {
	return l.
		add("rec_ready", f.RecReady).
		add("rec_order", f.RecOrder).
		add("scan_order", f.ScanOrder).
		add("scan_layout", f.ScanLayout)
}

const (
	SideGroom = "ženicha"
	SideBride = "nevěsty"

	NoRelationship = "ne"
)

type Marriage struct {
	ID int
	ScanFlags
	Date         Date
	Village      string
	GroomAge     Age
	BrideAge     Age
	GroomAdult   bool
	BrideAdult   bool
	Relationship string
	GroomID      int
	BrideID      int
	UserID       int
	RegisterID   int
	OfficiantID  int
	Banns1       *Date
	Banns2       *Date
	Banns3       *Date
}

func (m Marriage) Entity() string { return TableMarriage }

func (m Marriage) Fields() []Field {
	l := fieldList{}.add("_id_marriage", m.ID)
	l = m.ScanFlags.fields(l)
	return l.
		add("date", m.Date).
		add("village", m.Village).
		add("groom_y", m.GroomAge.Years).
		add("groom_m", m.GroomAge.Months).
		add("groom_d", m.GroomAge.Days).
		add("bride_y", m.BrideAge.Years).
		add("bride_m", m.BrideAge.Months).
		add("bride_d", m.BrideAge.Days).
		add("groom_adult", m.GroomAdult).
		add("bride_adult", m.BrideAdult).
		add("relationship", m.Relationship).
		add("groom_id", m.GroomID).
		add("bride_id", m.BrideID).
		add("user_id", m.UserID).
		add("register_id", m.RegisterID).
		add("officiant_id", m.OfficiantID).
		addDatePtr("banns_1", m.Banns1).
		addDatePtr("banns_2", m.Banns2).
		addDatePtr("banns_3", m.Banns3)
}

type Witness struct {
	PersonID     int
	MarriageID   int
	Side         string
	Relationship string
}

func (w Witness) Entity() string { return TableWitness }

func (w Witness) Fields() []Field {
	return fieldList{}.
		add("person_id", w.PersonID).
		add("marriage_id", w.MarriageID).
		add("side", w.Side).
		add("relationship", w.Relationship)
}

type Death struct {
	ID int
	ScanFlags
	Village      string
	Street       string
	Descr        int
	PlaceFuneral string
	PlaceDeath   string
	Widowed      bool
	Age          Age
	AgeHours     int
	Cause        string
	Inspection   bool
	InspectionBy string
	Notes        string

	// Either ProvisionDate alone or DeathDate together with FuneralDate.
	ProvisionDate *Date
	DeathDate     *Date
	FuneralDate   *Date

	PersonID    int
	UserID      int
	RegisterID  int
	DirectorID  int
	CelebrantID int
}

func (d Death) Entity() string { return TableDeath }

func (d Death) Fields() []Field {
	l := fieldList{}.add("_id_death", d.ID)
	l = d.ScanFlags.fields(l)
	return l.
		addDatePtr("provision_date", d.ProvisionDate).
		addDatePtr("death_date", d.DeathDate).
		addDatePtr("funeral_date", d.FuneralDate).
		add("death_village", d.Village).
		add("death_street", d.Street).
		add("death_descr", d.Descr).
		add("place_funeral", d.PlaceFuneral).
		addString("place_death", d.PlaceDeath).
		add("widowed", d.Widowed).
		add("age_y", d.Age.Years).
		add("age_m", d.Age.Months).
		add("age_d", d.Age.Days).
		add("age_h", d.AgeHours).
		addString("death_cause", d.Cause).
		add("inspection", d.Inspection).
		addString("inspection_by", d.InspectionBy).
		addString("notes", d.Notes).
		add("person_id", d.PersonID).
		add("user_id", d.UserID).
		add("register_id", d.RegisterID).
		add("director_id", d.DirectorID).
		add("celebrant_id", d.CelebrantID)
}
