package projector

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Rana718/vitalgen/internal/config"
	"github.com/Rana718/vitalgen/internal/corpus"
	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
)

func generate(t *testing.T, seed int64) *generator.Dataset {
	t.Helper()
	c, err := corpus.Default()
	require.NoError(t, err)

	cfg := config.DefaultConfig().Generation
	cfg.Records = 120
	g, err := generator.New(cfg, c, generator.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)

	ds, err := g.Run()
	require.NoError(t, err)
	return ds
}

func TestMarriageDocumentsPreserveIdentity(t *testing.T) {
	ds := generate(t, 1)
	p := New(ds, nil)
	marriages, deaths := p.Project()

	require.Len(t, marriages, len(ds.Marriages))
	require.Len(t, deaths, len(ds.Deaths))
	assert.Zero(t, p.Misses())

	for i, doc := range marriages {
		flat := ds.Marriages[i]
		require.NotNil(t, doc.Groom)
		require.NotNil(t, doc.Bride)
		assert.Equal(t, flat.GroomID, doc.Groom.ID)
		assert.Equal(t, flat.BrideID, doc.Bride.ID)
		assert.Equal(t, flat.RegisterID, doc.Register.ID)
		assert.Equal(t, flat.UserID, doc.User.ID)
		assert.Equal(t, flat.OfficiantID, doc.Officiant.ID)
		assert.Len(t, doc.Officiant.Name, 1)

		require.NotNil(t, doc.Groom.Father)
		require.NotNil(t, doc.Groom.Mother)
		require.NotNil(t, doc.Bride.Mother)
		assert.Equal(t, "muž", doc.Groom.Father.Sex)
		assert.Equal(t, "žena", doc.Bride.Mother.Sex)
		assert.Nil(t, doc.Groom.Father.Father, "parents are embedded one level deep")

		assert.NotEmpty(t, doc.Groom.Name)
		assert.Len(t, doc.Witnesses, 4)
	}
}

func TestDocumentsCarryNoForeignKeys(t *testing.T) {
	ds := generate(t, 2)
	marriages, deaths := New(ds, nil).Project()
	require.NotEmpty(t, marriages)
	require.NotEmpty(t, deaths)

	data, err := json.Marshal(marriages[0])
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	for _, key := range []string{"groom_id", "bride_id", "user_id", "register_id", "officiant_id"} {
		assert.NotContains(t, m, key)
	}
	assert.Contains(t, m, "_id_marriage")
	groom := m["groom"].(map[string]interface{})
	assert.NotContains(t, groom, "father_id")
	assert.NotContains(t, groom, "mother_id")
	assert.Contains(t, groom, "father")

	witness := m["witnesses"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, witness, "_id_person")
	assert.Contains(t, witness, "side")
	assert.NotContains(t, witness, "marriage_id")
	assert.NotContains(t, witness, "person_id")

	raw, err := bson.Marshal(deaths[0])
	require.NoError(t, err)
	var d bson.M
	require.NoError(t, bson.Unmarshal(raw, &d))
	for _, key := range []string{"person_id", "user_id", "register_id", "director_id", "celebrant_id"} {
		assert.NotContains(t, d, key)
	}
	doc := bson.Raw(raw)
	assert.EqualValues(t, ds.Deaths[0].PersonID, doc.Lookup("person", "_id_person").AsInt64())
	_, err = doc.LookupErr("person", "mother_id")
	assert.Error(t, err)
}

func TestDeathDocumentRelatives(t *testing.T) {
	ds := generate(t, 3)
	p := New(ds, nil)

	persons := map[int]model.Person{}
	for _, person := range ds.Persons {
		persons[person.ID] = person
	}

	for _, d := range ds.Deaths {
		doc := p.Death(d)
		person := persons[d.PersonID]

		require.NotNil(t, doc.Person)
		assert.Equal(t, d.PersonID, doc.Person.ID)
		require.NotNil(t, doc.Father)
		require.NotNil(t, doc.Mother)
		assert.Equal(t, *person.FatherID, doc.Father.ID)
		assert.Equal(t, *person.MotherID, doc.Mother.ID)
		assert.NotNil(t, doc.Director)
		assert.NotNil(t, doc.Celebrant)

		for _, kid := range doc.Kids {
			k := persons[kid.ID]
			owner := k.FatherID
			if owner == nil {
				owner = k.MotherID
			}
			require.NotNil(t, owner)
			assert.Equal(t, d.PersonID, *owner)
		}

		var spouse *int
		for _, m := range ds.Marriages {
			if person.Sex == model.Male && m.GroomID == person.ID {
				spouse = model.IntPtr(m.BrideID)
				break
			}
			if person.Sex == model.Female && m.BrideID == person.ID {
				spouse = model.IntPtr(m.GroomID)
				break
			}
		}
		if spouse == nil {
			assert.Nil(t, doc.BrideGroom)
		} else {
			require.NotNil(t, doc.BrideGroom)
			assert.Equal(t, *spouse, doc.BrideGroom.ID)
		}
	}
}

func TestLookupMissLeavesFieldsOut(t *testing.T) {
	ds := &generator.Dataset{
		Pools: &generator.Pools{
			Users:      []model.User{{ID: 0, Name: "Jan Novák"}},
			Registers:  []model.Register{{ID: 0, Archive: "ARCH0", Fond: "FOND0"}},
			MenNames:   []model.Name{{ID: 0, Name: "Jan"}},
			Officiants: []model.Officiant{{Official: model.Official{ID: 0, Surname: "Dvořák", Title: "farář"}}},
		},
		Population: &generator.Population{
			Persons: []model.Person{
				{ID: 5, Surname: "Novák", Sex: model.Male, MotherID: model.IntPtr(40), FatherID: model.IntPtr(41)},
				{ID: 6, Surname: "Malá", Sex: model.Female},
			},
			PersonNames: []model.PersonName{{PersonID: 5, NameID: 0}, {PersonID: 5, NameID: 99}},
		},
		Marriages: []model.Marriage{{ID: 0, GroomID: 5, BrideID: 6, UserID: 7, RegisterID: 0, OfficiantID: 0}},
		Witnesses: []model.Witness{{PersonID: 77, MarriageID: 0, Side: model.SideGroom}},
	}

	p := New(ds, nil)
	doc := p.Marriage(ds.Marriages[0])

	require.NotNil(t, doc.Groom)
	assert.Equal(t, []string{"Jan"}, doc.Groom.Name)
	assert.Nil(t, doc.Groom.Father)
	assert.Nil(t, doc.Groom.Mother)
	assert.Nil(t, doc.User)
	assert.NotNil(t, doc.Register)
	assert.Empty(t, doc.Witnesses)
	assert.Empty(t, doc.Bride.Name)

	// name 99, father 41, mother 40, user 7, witness 77
	assert.Equal(t, 5, p.Misses())
}
