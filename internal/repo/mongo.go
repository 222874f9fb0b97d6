package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/logger"
	"github.com/nikmy/labforms/pkg/mongotools"
)

var (
	expirationIndex = mongo.IndexModel{
		Keys:    bson.D{{Key: fieldExpiresAt, Value: 1}},
		Options: options.Index().SetName("expires_at_ttl").SetExpireAfterSeconds(0),
	}
)

// NewMongoStorage connects to mongo and returns a key-value store for
// fiber sessions. Expired keys are removed by a TTL index.
func NewMongoStorage(ctx context.Context, cfg MongoConfig, log logger.Logger) (*MongoStorage, error) {
	cfg = cfg.withDefaults()

	clientOpts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)
	if cfg.Auth.Username != "" {
		clientOpts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		clientOpts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		clientOpts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	_, err = collection.Indexes().CreateOne(ctx, expirationIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create index")
	}

	return &MongoStorage{
		coll:    collection,
		timeout: cfg.Timeout,
		now:     time.Now,
		log:     log.With("mongo_storage"),
	}, nil
}

type MongoStorage struct {
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
	log     logger.Logger
}

func (m *MongoStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	ctx, cancel := m.context()
	defer cancel()

	now := m.now()
	result := m.coll.FindOne(ctx, liveFilter(key, now))
	err := result.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "find key %q", key)
	}

	var e entry
	err = result.Decode(&e)
	if err != nil {
		return nil, errors.WrapFail(err, "decode entry")
	}

	if e.expired(now) {
		return nil, nil
	}

	return e.Value, nil
}

func (m *MongoStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := m.context()
	defer cancel()

	e := newEntry(key, val, exp, m.now())
	_, err := m.coll.UpdateOne(
		ctx,
		mongotools.FilterByID(key),
		upsertUpdate(e),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return errors.WrapFailf(err, "upsert key %q", key)
	}

	return nil
}

func (m *MongoStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	ctx, cancel := m.context()
	defer cancel()

	_, err := m.coll.DeleteOne(ctx, mongotools.FilterByID(key))
	return errors.WrapFailf(err, "delete key %q", key)
}

func (m *MongoStorage) Reset() error {
	ctx, cancel := m.context()
	defer cancel()

	result, err := m.coll.DeleteMany(ctx, mongotools.All())
	if err != nil {
		return errors.WrapFail(err, "delete all keys")
	}

	m.log.Infof("storage reset, %d keys removed", result.DeletedCount)
	return nil
}

func (m *MongoStorage) Close() error {
	ctx, cancel := m.context()
	defer cancel()

	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}

func (m *MongoStorage) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}
