package store

import (
	"context"
	"errors"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// DuplicateKeyCode is the mongo server error code for a unique index
// violation.
const DuplicateKeyCode = 11000

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore - mongo-backed implementation of PeerHelpStore
func NewMongoStore(client *mongo.Client, database string) PeerHelpStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// opContext bounds a store operation so a wedged server surfaces
// ErrStoreUnavailable instead of hanging the caller.
func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultTimeout)
}

// wrapStoreError maps driver timeouts onto ErrStoreUnavailable and
// passes everything else through.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStoreUnavailable
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrStoreUnavailable
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.HasErrorLabel("NetworkError") || ce.IsMaxTimeMSExpiredError()) {
		return ErrStoreUnavailable
	}
	return err
}
