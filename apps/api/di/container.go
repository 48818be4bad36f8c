// Package di wires the API server's dependencies.
package di

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
	logsvc "github.com/trezcool/shule/services/logger"
	"github.com/trezcool/shule/storage"
)

type StoreLoggerParam struct {
	dig.In
	Logger core.Logger `name:"storeLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newStoreLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "STORE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

// newStore opens the in-memory store served by the API.
func newStore(conf *core.Config, loggerParam StoreLoggerParam) record.Client {
	store, err := storage.OpenMock(conf)
	if err != nil {
		loggerParam.Logger.Fatal("setting up store: "+err.Error(), err)
	}
	return store
}

func newServer(conf *core.Config, logger core.Logger, store record.Client) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:   conf,
		Logger: logger,
		Store:  store,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newStoreLogger, dig.Name("storeLogger")))
	must(c.Provide(newStore))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
