package projector

import "github.com/Rana718/vitalgen/internal/model"

// PersonDocument is a person with resolved names and occupations. Parent
// edges are embedded, never stored as ids.
type PersonDocument struct {
	ID          int             `json:"_id_person" bson:"_id_person"`
	Surname     string          `json:"surname" bson:"surname"`
	Village     string          `json:"village" bson:"village"`
	Street      string          `json:"street" bson:"street"`
	Descr       int             `json:"descr" bson:"descr"`
	Birth       model.Date      `json:"birth" bson:"birth"`
	Sex         string          `json:"sex" bson:"sex"`
	Religion    string          `json:"religion" bson:"religion"`
	Name        []string        `json:"name,omitempty" bson:"name,omitempty"`
	Occupations []string        `json:"occupations,omitempty" bson:"occupations,omitempty"`
	Father      *PersonDocument `json:"father,omitempty" bson:"father,omitempty"`
	Mother      *PersonDocument `json:"mother,omitempty" bson:"mother,omitempty"`
}

// WitnessDocument merges the witness row with the witness's person fields.
type WitnessDocument struct {
	Side           string `json:"side" bson:"side"`
	Relationship   string `json:"relationship" bson:"relationship"`
	PersonDocument `bson:",inline"`
}

type RegisterDocument struct {
	ID        int    `json:"_id_register" bson:"_id_register"`
	Archive   string `json:"archive" bson:"archive"`
	Fond      string `json:"fond" bson:"fond"`
	Signature int    `json:"signature" bson:"signature"`
}

type UserDocument struct {
	ID   int    `json:"_id_user" bson:"_id_user"`
	Name string `json:"name" bson:"name"`
}

type DirectorDocument struct {
	ID      int      `json:"_id_director" bson:"_id_director"`
	Surname string   `json:"surname" bson:"surname"`
	Title   string   `json:"title" bson:"title"`
	Name    []string `json:"name,omitempty" bson:"name,omitempty"`
}

type CelebrantDocument struct {
	ID         int      `json:"_id_celebrant" bson:"_id_celebrant"`
	Surname    string   `json:"surname" bson:"surname"`
	TitleOccup string   `json:"title_occup" bson:"title_occup"`
	Name       []string `json:"name,omitempty" bson:"name,omitempty"`
}

type OfficiantDocument struct {
	ID      int      `json:"_id_officiant" bson:"_id_officiant"`
	Surname string   `json:"surname" bson:"surname"`
	Title   string   `json:"title" bson:"title"`
	Name    []string `json:"name,omitempty" bson:"name,omitempty"`
}

type MarriageDocument struct {
	ID           int         `json:"_id_marriage" bson:"_id_marriage"`
	RecReady     bool        `json:"rec_ready" bson:"rec_ready"`
	RecOrder     int         `json:"rec_order" bson:"rec_order"`
	ScanOrder    int         `json:"scan_order" bson:"scan_order"`
	ScanLayout   string      `json:"scan_layout" bson:"scan_layout"`
	Date         model.Date  `json:"date" bson:"date"`
	Village      string      `json:"village" bson:"village"`
	GroomY       int         `json:"groom_y" bson:"groom_y"`
	GroomM       int         `json:"groom_m" bson:"groom_m"`
	GroomD       int         `json:"groom_d" bson:"groom_d"`
	BrideY       int         `json:"bride_y" bson:"bride_y"`
	BrideM       int         `json:"bride_m" bson:"bride_m"`
	BrideD       int         `json:"bride_d" bson:"bride_d"`
	GroomAdult   bool        `json:"groom_adult" bson:"groom_adult"`
	BrideAdult   bool        `json:"bride_adult" bson:"bride_adult"`
	Relationship string      `json:"relationship" bson:"relationship"`
	Banns1       *model.Date `json:"banns_1,omitempty" bson:"banns_1,omitempty"`
	Banns2       *model.Date `json:"banns_2,omitempty" bson:"banns_2,omitempty"`
	Banns3       *model.Date `json:"banns_3,omitempty" bson:"banns_3,omitempty"`

	Register  *RegisterDocument  `json:"register,omitempty" bson:"register,omitempty"`
	User      *UserDocument      `json:"user,omitempty" bson:"user,omitempty"`
	Officiant *OfficiantDocument `json:"officiant,omitempty" bson:"officiant,omitempty"`
	Witnesses []WitnessDocument  `json:"witnesses,omitempty" bson:"witnesses,omitempty"`
	Groom     *PersonDocument    `json:"groom,omitempty" bson:"groom,omitempty"`
	Bride     *PersonDocument    `json:"bride,omitempty" bson:"bride,omitempty"`
}

type DeathDocument struct {
	ID            int         `json:"_id_death" bson:"_id_death"`
	RecReady      bool        `json:"rec_ready" bson:"rec_ready"`
	RecOrder      int         `json:"rec_order" bson:"rec_order"`
	ScanOrder     int         `json:"scan_order" bson:"scan_order"`
	ScanLayout    string      `json:"scan_layout" bson:"scan_layout"`
	ProvisionDate *model.Date `json:"provision_date,omitempty" bson:"provision_date,omitempty"`
	DeathDate     *model.Date `json:"death_date,omitempty" bson:"death_date,omitempty"`
	FuneralDate   *model.Date `json:"funeral_date,omitempty" bson:"funeral_date,omitempty"`
	DeathVillage  string      `json:"death_village" bson:"death_village"`
	DeathStreet   string      `json:"death_street" bson:"death_street"`
	DeathDescr    int         `json:"death_descr" bson:"death_descr"`
	PlaceFuneral  string      `json:"place_funeral" bson:"place_funeral"`
	PlaceDeath    string      `json:"place_death,omitempty" bson:"place_death,omitempty"`
	Widowed       bool        `json:"widowed" bson:"widowed"`
	AgeY          int         `json:"age_y" bson:"age_y"`
	AgeM          int         `json:"age_m" bson:"age_m"`
	AgeD          int         `json:"age_d" bson:"age_d"`
	AgeH          int         `json:"age_h" bson:"age_h"`
	DeathCause    string      `json:"death_cause,omitempty" bson:"death_cause,omitempty"`
	Inspection    bool        `json:"inspection" bson:"inspection"`
	InspectionBy  string      `json:"inspection_by,omitempty" bson:"inspection_by,omitempty"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`

	Register   *RegisterDocument  `json:"register,omitempty" bson:"register,omitempty"`
	User       *UserDocument      `json:"user,omitempty" bson:"user,omitempty"`
	Director   *DirectorDocument  `json:"director,omitempty" bson:"director,omitempty"`
	Celebrant  *CelebrantDocument `json:"celebrant,omitempty" bson:"celebrant,omitempty"`
	Person     *PersonDocument    `json:"person,omitempty" bson:"person,omitempty"`
	Father     *PersonDocument    `json:"father,omitempty" bson:"father,omitempty"`
	Mother     *PersonDocument    `json:"mother,omitempty" bson:"mother,omitempty"`
	BrideGroom *PersonDocument    `json:"bride_groom,omitempty" bson:"bride_groom,omitempty"`
	Kids       []PersonDocument   `json:"kids,omitempty" bson:"kids,omitempty"`
}
