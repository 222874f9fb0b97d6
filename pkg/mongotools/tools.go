package mongotools

import (
	"go.mongodb.org/mongo-driver/bson"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	return bson.M{"$set": Merge(fieldKVs...)}
}

// Merge joins filters into one document, later keys win.
func Merge(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}
	return s
}

func All() bson.M {
	return bson.M{}
}

func FilterByID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value *T) bson.M {
	return bson.M{field: value}
}

func Or(filters ...bson.M) bson.M {
	alts := make(bson.A, 0, len(filters))
	for _, f := range filters {
		alts = append(alts, f)
	}
	return bson.M{"$or": alts}
}

func Gt(field string, value any) bson.M {
	return bson.M{field: bson.M{"$gt": value}}
}

// IsNull matches documents where field is null or missing.
func IsNull(field string) bson.M {
	return bson.M{field: nil}
}
