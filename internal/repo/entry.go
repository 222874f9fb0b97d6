package repo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nikmy/labforms/pkg/mongotools"
)

const (
	fieldValue     = "value"
	fieldExpiresAt = "expires_at"
)

type entry struct {
	Key       string     `bson:"_id"`
	Value     []byte     `bson:"value"`
	ExpiresAt *time.Time `bson:"expires_at"`
}

func newEntry(key string, val []byte, exp time.Duration, now time.Time) entry {
	e := entry{Key: key, Value: val}
	if exp > 0 {
		at := now.Add(exp).UTC()
		e.ExpiresAt = &at
	}
	return e
}

func (e entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && !e.ExpiresAt.After(now)
}

// liveFilter matches the key unless its expiration has passed. TTL sweeps
// are lazy, so reads cannot rely on them alone.
func liveFilter(key string, now time.Time) bson.M {
	return mongotools.Merge(
		mongotools.FilterByID(key),
		mongotools.Or(
			mongotools.IsNull(fieldExpiresAt),
			mongotools.Gt(fieldExpiresAt, now.UTC()),
		),
	)
}

func upsertUpdate(e entry) bson.M {
	return mongotools.SetAll(
		mongotools.Field(fieldValue, &e.Value),
		mongotools.Field(fieldExpiresAt, e.ExpiresAt),
	)
}
