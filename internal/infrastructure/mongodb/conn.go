package mongodb

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

const connectTimeout = 5 * time.Second

// Conn owns the process-wide MongoDB handle. The connection is established
// lazily on first use and cached; concurrent first uses collapse into a
// single connect attempt, and a failed attempt leaves the handle unset so
// the next caller retries cleanly.
type Conn struct {
	uri    string
	dbName string
	logger *logrus.Logger

	sf singleflight.Group
	mu sync.RWMutex

	client *mongo.Client
	db     *mongo.Database

	// dial is swappable in tests
	dial func(ctx context.Context) (*mongo.Client, error)
}

func NewConn(uri, dbName string, logger *logrus.Logger) *Conn {
	c := &Conn{uri: uri, dbName: dbName, logger: logger}
	c.dial = c.connect
	return c
}

func (c *Conn) connect(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Database returns the shared database handle, connecting first if needed.
func (c *Conn) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := c.sf.Do("connect", func() (interface{}, error) {
		c.mu.RLock()
		db := c.db
		c.mu.RUnlock()
		if db != nil {
			return db, nil
		}

		client, err := c.dial(ctx)
		if err != nil {
			return nil, err
		}
		db = client.Database(c.dbName)

		c.mu.Lock()
		c.client = client
		c.db = db
		c.mu.Unlock()

		c.logger.WithField("db", c.dbName).Info("database connected")
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Database), nil
}

// Close disconnects the cached client, if one was ever established.
func (c *Conn) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.db = nil
	c.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
