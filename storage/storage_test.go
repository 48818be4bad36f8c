package storage

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/storage/mockstore"
	"github.com/trezcool/shule/storage/remote"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		baseURL string
		want    interface{}
		wantErr bool
	}{
		{name: "mock", backend: core.BackendMock, want: &mockstore.Store{}},
		{name: "default", backend: "", want: &mockstore.Store{}},
		{name: "remote", backend: core.BackendRemote, baseURL: "http://localhost:8000", want: &remote.Client{}},
		{name: "remote without url", backend: core.BackendRemote, wantErr: true},
		{name: "unknown", backend: "redis", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := new(core.Config)
			conf.Backend = tt.backend
			conf.Remote.BaseURL = tt.baseURL
			client, err := Open(conf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.IsType(t, tt.want, client)
			}
		})
	}

	conf := new(core.Config)
	conf.Backend = "redis"
	_, err := Open(conf)
	assert.Equal(t, ErrUnknownBackend, errors.Cause(err))
}

func TestOpenMock_NoSeed(t *testing.T) {
	conf := new(core.Config)
	conf.Mock.NoSeed = true
	store, err := OpenMock(conf)
	require.NoError(t, err)
	for _, table := range record.Tables {
		assert.Empty(t, store.Snapshot(table))
	}
}

func TestPing(t *testing.T) {
	store, err := mockstore.Open(mockstore.WithLatency(0, 0))
	require.NoError(t, err)
	assert.NoError(t, Ping(context.Background(), store, 3))

	conf := new(core.Config)
	conf.Remote.BaseURL = "http://127.0.0.1:1"
	conf.Remote.Timeout = 100 * time.Millisecond
	err = Ping(context.Background(), remote.NewClient(conf), 2)
	assert.Error(t, err)
}
