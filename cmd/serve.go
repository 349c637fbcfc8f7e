package main

import (
	"context"

	"github.com/Loandr1324/InsertManagerInOrder/internal/scheduler"
	"github.com/Loandr1324/InsertManagerInOrder/internal/transport/http/middleware"
	"github.com/Loandr1324/InsertManagerInOrder/internal/transport/http/server/handlers-fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP run trigger and the optional hourly scheduler",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			return serve(cmd.Context(), a)
		})
	},
}

func serve(ctx context.Context, a *app) error {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           a.cfg.Server.RequestTimeout,
		WriteTimeout:          a.cfg.Server.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(a.log))

	handlers_fiber.RegisterHandlers(serv, handlers_fiber.NewHandler(a.log, a.uc))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infow("http server listening", "addr", a.cfg.ServerAddr())
		return serv.Listen(a.cfg.ServerAddr())
	})
	if a.cfg.Schedule.Enabled {
		g.Go(func() error {
			return scheduler.New(a.log, a.uc, a.cfg.Schedule).Start(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		a.log.Infow("shutting down")
		return shutdown(a, serv)
	})

	if err := g.Wait(); err != nil {
		a.log.Errorw("server stopped with error", "error", err)
		return err
	}
	return nil
}

func shutdown(a *app, serv *fiber.App) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- serv.Shutdown()
	}()

	select {
	case err := <-done:
		return err
	case <-shutdownCtx.Done():
		a.log.Warnw("server shutdown timeout", "timeout", a.cfg.Server.ShutdownTimeout)
		return nil
	}
}
