package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestIndexCatalog(t *testing.T) {
	for name, paths := range map[string][]string{"marriages": MarriageIndexes, "deaths": DeathIndexes} {
		// mongo caps a collection at 64 indexes including _id
		assert.Less(t, len(paths), 64, name)

		seen := make(map[string]bool)
		for _, p := range paths {
			n := IndexName(p)
			assert.False(t, seen[n], "duplicate index %s in %s", n, name)
			seen[n] = true
		}
	}
}

func TestIndexModels(t *testing.T) {
	models := indexModels([]string{"groom.father._id_person"})
	assert.Len(t, models, 1)
	assert.Equal(t, bson.D{{Key: "groom.father._id_person", Value: 1}}, models[0].Keys)
	assert.Equal(t, "idx_groom_father__id_person", *models[0].Options.Name)
	assert.Equal(t, "idx_id_register", IndexName("_id_register"))
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"mongodb://localhost:27017/records", "records"},
		{"mongodb://localhost:27017/records?retryWrites=true", "records"},
		{"mongodb://localhost:27017/admin", "vitalgen"},
		{"mongodb://localhost:27017", "vitalgen"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DatabaseName(tt.url, options.Client().ApplyURI(tt.url)), tt.url)
	}

	url := "mongodb://u:p@localhost:27017/?authSource=archive"
	assert.Equal(t, "archive", DatabaseName(url, options.Client().ApplyURI(url)))
}
