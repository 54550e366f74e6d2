// Package schema is the relational catalog of the generated vital records.
package schema

import (
	"fmt"

	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/types"
)

const (
	typeInt   = "INTEGER"
	typeText  = "VARCHAR(255)"
	typeShort = "VARCHAR(8)"
	typeBool  = "BOOLEAN"
	typeDate  = "DATE"
)

func pk(name string) types.SchemaColumn {
	return types.SchemaColumn{Name: name, Type: typeInt, IsPrimary: true}
}

func col(name, typ string) types.SchemaColumn {
	return types.SchemaColumn{Name: name, Type: typ}
}

func optional(name, typ string) types.SchemaColumn {
	return types.SchemaColumn{Name: name, Type: typ, Nullable: true}
}

func fk(name, table, column string, nullable bool) types.SchemaColumn {
	return types.SchemaColumn{Name: name, Type: typeInt, Nullable: nullable, ForeignKeyTable: table, ForeignKeyColumn: column}
}

func scanColumns() []types.SchemaColumn {
	return []types.SchemaColumn{
		col("rec_ready", typeBool),
		col("rec_order", typeInt),
		col("scan_order", typeInt),
		col("scan_layout", typeShort),
	}
}

func index(table string, columns ...string) types.SchemaIndex {
	name := "idx_" + table
	for _, c := range columns {
		name += "_" + c
	}
	return types.SchemaIndex{Name: name, Table: table, Columns: columns}
}

func table(name string, columns []types.SchemaColumn, indexed ...string) types.SchemaTable {
	t := types.SchemaTable{Name: name, Columns: columns}
	for _, c := range columns {
		if c.ForeignKeyTable != "" {
			t.Indexes = append(t.Indexes, index(name, c.Name))
		}
	}
	for _, c := range indexed {
		t.Indexes = append(t.Indexes, index(name, c))
	}
	return t
}

// Tables returns the catalog in declaration order.
func Tables() []types.SchemaTable {
	marriage := []types.SchemaColumn{pk("_id_marriage")}
	marriage = append(marriage, scanColumns()...)
	marriage = append(marriage,
		col("date", typeDate),
		col("village", typeText),
		col("groom_y", typeInt), col("groom_m", typeInt), col("groom_d", typeInt),
		col("bride_y", typeInt), col("bride_m", typeInt), col("bride_d", typeInt),
		col("groom_adult", typeBool),
		col("bride_adult", typeBool),
		col("relationship", typeText),
		fk("groom_id", model.TablePerson, "_id_person", false),
		fk("bride_id", model.TablePerson, "_id_person", false),
		fk("user_id", model.TableUser, "_id_user", false),
		fk("register_id", model.TableRegister, "_id_register", false),
		fk("officiant_id", model.TableOfficiant, "_id_officiant", false),
		optional("banns_1", typeDate),
		optional("banns_2", typeDate),
		optional("banns_3", typeDate),
	)

	death := []types.SchemaColumn{pk("_id_death")}
	death = append(death, scanColumns()...)
	death = append(death,
		optional("provision_date", typeDate),
		optional("death_date", typeDate),
		optional("funeral_date", typeDate),
		col("death_village", typeText),
		col("death_street", typeText),
		col("death_descr", typeInt),
		col("place_funeral", typeText),
		optional("place_death", typeText),
		col("widowed", typeBool),
		col("age_y", typeInt), col("age_m", typeInt), col("age_d", typeInt), col("age_h", typeInt),
		optional("death_cause", typeText),
		col("inspection", typeBool),
		optional("inspection_by", typeText),
		optional("notes", typeText),
		fk("person_id", model.TablePerson, "_id_person", false),
		fk("user_id", model.TableUser, "_id_user", false),
		fk("register_id", model.TableRegister, "_id_register", false),
		fk("director_id", model.TableDirector, "_id_director", false),
		fk("celebrant_id", model.TableCelebrant, "_id_celebrant", false),
	)

	return []types.SchemaTable{
		table(model.TableUser, []types.SchemaColumn{pk("_id_user"), col("name", typeText)}),
		table(model.TableRegister, []types.SchemaColumn{
			pk("_id_register"), col("archive", typeText), col("fond", typeText), col("signature", typeInt),
		}, "signature"),
		table(model.TableName, []types.SchemaColumn{pk("_id_name"), col("name", typeText)}, "name"),
		table(model.TableOccupation, []types.SchemaColumn{pk("_id_occup"), col("name", typeText)}),
		table(model.TableDirector, []types.SchemaColumn{pk("_id_director"), col("surname", typeText), col("title", typeText)}),
		table(model.TableDirectorName, []types.SchemaColumn{
			fk("director_id", model.TableDirector, "_id_director", false),
			fk("name_id", model.TableName, "_id_name", false),
		}),
		table(model.TableCelebrant, []types.SchemaColumn{pk("_id_celebrant"), col("surname", typeText), col("title_occup", typeText)}),
		table(model.TableCelebrantName, []types.SchemaColumn{
			fk("celebrant_id", model.TableCelebrant, "_id_celebrant", false),
			fk("name_id", model.TableName, "_id_name", false),
		}),
		table(model.TableOfficiant, []types.SchemaColumn{pk("_id_officiant"), col("surname", typeText), col("title", typeText)}),
		table(model.TableOfficiantName, []types.SchemaColumn{
			fk("officiant_id", model.TableOfficiant, "_id_officiant", false),
			fk("name_id", model.TableName, "_id_name", false),
		}),
		table(model.TablePerson, []types.SchemaColumn{
			pk("_id_person"),
			col("surname", typeText),
			col("village", typeText),
			col("street", typeText),
			col("descr", typeInt),
			col("birth", typeDate),
			col("sex", typeText),
			col("religion", typeText),
			fk("mother_id", model.TablePerson, "_id_person", true),
			fk("father_id", model.TablePerson, "_id_person", true),
		}, "surname", "village", "birth", "sex", "religion"),
		table(model.TablePersonName, []types.SchemaColumn{
			fk("person_id", model.TablePerson, "_id_person", false),
			fk("name_id", model.TableName, "_id_name", false),
		}),
		table(model.TablePersonOccupation, []types.SchemaColumn{
			fk("person_id", model.TablePerson, "_id_person", false),
			fk("occup_id", model.TableOccupation, "_id_occup", false),
		}),
		table(model.TableMarriage, marriage, "date", "village", "groom_y", "bride_y", "relationship"),
		table(model.TableWitness, []types.SchemaColumn{
			fk("marriage_id", model.TableMarriage, "_id_marriage", false),
			fk("person_id", model.TablePerson, "_id_person", false),
			col("side", typeText),
			col("relationship", typeText),
		}, "relationship"),
		table(model.TableDeath, death, "death_village", "place_funeral", "age_y", "death_cause", "death_date", "provision_date"),
	}
}

// InsertionOrder returns the table names ordered for loading.
func InsertionOrder() ([]string, error) {
	g := NewDependencyGraph()
	for _, t := range Tables() {
		g.AddTable(t)
	}
	order, err := g.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}
	return order, nil
}

// Lookup finds a catalog table by name.
func Lookup(name string) (types.SchemaTable, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return types.SchemaTable{}, false
}
