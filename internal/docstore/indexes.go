package docstore

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Secondary single-field indexes, addressed by dotted path into the
// denormalized documents.
var MarriageIndexes = []string{
	"date", "village", "groom_y", "bride_y", "relationship",
	"banns_1", "banns_2", "banns_3",
	"register._id_register", "register.signature",
	"user._id_user",
	"officiant._id_officiant",
	"witnesses._id_person", "witnesses.relationship", "witnesses.village", "witnesses.religion",
	"groom._id_person", "groom.name", "groom.surname", "groom.village", "groom.occupations",
	"groom.birth", "groom.religion", "groom.father._id_person", "groom.mother._id_person",
	"bride._id_person", "bride.name", "bride.surname", "bride.village", "bride.occupations",
	"bride.birth", "bride.religion", "bride.father._id_person", "bride.mother._id_person",
}

var DeathIndexes = []string{
	"death_village", "place_funeral", "widowed", "age_y", "inspection", "death_cause",
	"death_date", "funeral_date", "provision_date", "place_death",
	"register._id_register", "register.signature",
	"user._id_user",
	"director._id_director",
	"celebrant._id_celebrant",
	"person._id_person", "person.name", "person.surname", "person.village",
	"person.birth", "person.sex", "person.religion", "person.occupations",
	"father._id_person", "father.village", "father.religion",
	"mother._id_person", "mother.village", "mother.religion",
	"bride_groom._id_person", "bride_groom.name", "bride_groom.surname",
	"bride_groom.village", "bride_groom.religion", "bride_groom.occupations",
	"kids._id_person", "kids.name", "kids.surname", "kids.birth", "kids.sex", "kids.religion",
}

// IndexName derives a stable index name from a dotted path.
func IndexName(path string) string {
	return "idx_" + strings.NewReplacer(".", "_").Replace(strings.TrimPrefix(path, "_"))
}

func indexModels(paths []string) []mongo.IndexModel {
	models := make([]mongo.IndexModel, len(paths))
	for i, path := range paths {
		models[i] = mongo.IndexModel{
			Keys:    bson.D{{Key: path, Value: 1}},
			Options: options.Index().SetName(IndexName(path)),
		}
	}
	return models
}
