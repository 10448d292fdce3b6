package mongodb

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// offlineClient builds a client handle without any I/O.
func offlineClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	return client
}

func TestConn_Database_SingleConnectUnderConcurrency(t *testing.T) {
	t.Parallel()

	client := offlineClient(t)
	var dials atomic.Int32
	release := make(chan struct{})

	c := NewConn("mongodb://unused", "testdb", testLogger())
	c.dial = func(ctx context.Context) (*mongo.Client, error) {
		dials.Add(1)
		<-release
		return client, nil
	}

	const callers = 10
	dbs := make([]*mongo.Database, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dbs[i], errs[i] = c.Database(context.Background())
		}(i)
	}
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, dials.Load(), "concurrent first uses must collapse to one connect")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Same(t, dbs[0], dbs[i])
		require.Equal(t, "testdb", dbs[i].Name())
	}
}

func TestConn_Database_FailedConnectIsRetryable(t *testing.T) {
	t.Parallel()

	client := offlineClient(t)
	dialErr := errors.New("no route to host")
	var dials atomic.Int32

	c := NewConn("mongodb://unused", "testdb", testLogger())
	c.dial = func(ctx context.Context) (*mongo.Client, error) {
		if dials.Add(1) == 1 {
			return nil, dialErr
		}
		return client, nil
	}

	_, err := c.Database(context.Background())
	require.ErrorIs(t, err, dialErr)

	db, err := c.Database(context.Background())
	require.NoError(t, err)
	require.Equal(t, "testdb", db.Name())
	require.EqualValues(t, 2, dials.Load())

	// cached from here on
	again, err := c.Database(context.Background())
	require.NoError(t, err)
	require.Same(t, db, again)
	require.EqualValues(t, 2, dials.Load())
}
