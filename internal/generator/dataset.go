package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/schema"
)

// Dataset is one generation run, held fully in memory.
type Dataset struct {
	RunID       uuid.UUID
	GeneratedAt time.Time

	*Pools
	*Population

	Marriages []model.Marriage
	Witnesses []model.Witness
	Deaths    []model.Death
}

// TableRecords is every row of one table.
type TableRecords struct {
	Table   string
	Records []model.Record
}

func records[T model.Record](rows []T) []model.Record {
	out := make([]model.Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

func (d *Dataset) byTable() map[string][]model.Record {
	return map[string][]model.Record{
		model.TableUser:             records(d.Users),
		model.TableRegister:         records(d.Registers),
		model.TableName:             records(d.Names()),
		model.TableOccupation:       records(d.Occupations),
		model.TableDirector:         records(d.Directors),
		model.TableDirectorName:     records(d.DirectorNames),
		model.TableCelebrant:        records(d.Celebrants),
		model.TableCelebrantName:    records(d.CelebrantNames),
		model.TableOfficiant:        records(d.Officiants),
		model.TableOfficiantName:    records(d.OfficiantNames),
		model.TablePerson:           records(d.Persons),
		model.TablePersonName:       records(d.PersonNames),
		model.TablePersonOccupation: records(d.PersonOccupations),
		model.TableMarriage:         records(d.Marriages),
		model.TableWitness:          records(d.Witnesses),
		model.TableDeath:            records(d.Deaths),
	}
}

// Tables groups the rows per table in foreign-key dependency order.
func (d *Dataset) Tables() ([]TableRecords, error) {
	order, err := schema.InsertionOrder()
	if err != nil {
		return nil, err
	}

	rows := d.byTable()
	out := make([]TableRecords, 0, len(order))
	for _, table := range order {
		recs, ok := rows[table]
		if !ok {
			return nil, fmt.Errorf("no records registered for table %s", table)
		}
		out = append(out, TableRecords{Table: table, Records: recs})
	}
	return out, nil
}

// Records flattens Tables into the (entity, record) stream.
func (d *Dataset) Records() ([]model.Record, error) {
	tables, err := d.Tables()
	if err != nil {
		return nil, err
	}

	var out []model.Record
	for _, t := range tables {
		out = append(out, t.Records...)
	}
	return out, nil
}

// Counts reports the number of rows per table.
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int)
	for table, recs := range d.byTable() {
		counts[table] = len(recs)
	}
	return counts
}
