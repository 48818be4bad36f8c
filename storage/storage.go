// Package storage opens the record backend selected by the configuration.
package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/storage/mockstore"
	"github.com/trezcool/shule/storage/remote"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Open returns the remote client or a fresh mock store, as configured.
func Open(conf *core.Config) (record.Client, error) {
	switch conf.Backend {
	case core.BackendRemote:
		if conf.Remote.BaseURL == "" {
			return nil, errors.New("remote backend requires remote.baseURL")
		}
		return remote.NewClient(conf), nil
	case core.BackendMock, "":
		return OpenMock(conf)
	default:
		return nil, errors.Wrap(ErrUnknownBackend, conf.Backend)
	}
}

// OpenMock returns a mock store configured from conf.Mock.
func OpenMock(conf *core.Config) (*mockstore.Store, error) {
	opts := []mockstore.Option{mockstore.WithLatency(conf.Mock.MinLatency, conf.Mock.MaxLatency)}
	if conf.Mock.NoSeed {
		opts = append(opts, mockstore.WithoutSeed())
	}
	store, err := mockstore.Open(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "opening mock store")
	}
	return store, nil
}

// Ping waits for the backend to answer a fetch. Waits 100ms longer between each attempt.
func Ping(ctx context.Context, client record.Client, maxAttempts int) error {
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if _, err = client.FetchRecords(ctx, record.TableClass, record.FetchParams{Fields: record.Fields(record.NameField)}); err == nil {
			return nil
		}
		if attempts == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "backend ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "backend ping timeout")
}
