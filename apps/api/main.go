package main

import (
	"context"
	"fmt"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/apps/api/di"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/storage"
)

func main() {
	c := di.New()

	err := c.Invoke(func(conf *core.Config, logger core.Logger, store record.Client, server *echoapi.Server) {
		logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
		defer logger.Info("Application stopped")

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		if err := storage.Ping(ctx, store, 5); err != nil {
			cancel()
			logger.Fatal(fmt.Sprintf("store not ready: %v", err), err)
		}
		cancel()

		go func() {
			server.Start()
		}()

		// =========================================================================
		// Shutdown

		select {
		case err := <-server.Errors():
			logger.Fatal(fmt.Sprintf("server error: %v", err), err)

		case sig := <-server.ShutdownSignal():
			logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()

			// asking listener to shutdown and shed load
			if err := server.Shutdown(ctx); err != nil {
				logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

				if err = server.Close(); err != nil {
					logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
				}
			}
		}
	})
	if err != nil {
		panic(err)
	}
}
