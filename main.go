package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"communion.invite/configs"
	"communion.invite/configs/configslog"
	"communion.invite/models"
	"communion.invite/routes"
	"communion.invite/services"

	"github.com/gofiber/fiber/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	if err := newApp().Run(os.Args); err != nil {
		configslog.Log.Error("Application failed", zap.Error(err))
		configslog.SyncLogger()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "communion",
		Usage: "Serve the First Holy Communion invitation page.",
		Commands: []*cli.Command{
			serveCommand(),
			linkCommand(),
			icsCommand(),
		},
		DefaultCommand: "serve",
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web server.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "optional .env file to load", Value: ".env"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := configs.LoadConfig(c.String("env-file"))
			if err != nil {
				return err
			}
			configslog.InitLoggerWith(cfg.Env, cfg.LogLevel)

			app := fiber.New(configs.FiberConfig(cfg))
			routes.SetupRoutes(app, cfg)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				configslog.SLog.Infof("Invitation server listening on %s", cfg.Addr())
				errCh <- app.Listen(cfg.Addr())
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			configslog.SLog.Info("Shutdown signal received, stopping server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			configslog.SLog.Info("Server stopped")
			return nil
		},
	}
}

func linkCommand() *cli.Command {
	return &cli.Command{
		Name:  "link",
		Usage: "Print the add-to-calendar URL.",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintln(c.App.Writer, services.NewCalendarService().GoogleLink(models.CommunionEvent()))
			return err
		},
	}
}

func icsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ics",
		Usage: "Write the event as an iCalendar file.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
		},
		Action: func(c *cli.Context) error {
			path := c.String("out")
			if path == "" {
				return services.NewCalendarService().WriteICS(c.Context, models.CommunionEvent(), c.App.Writer)
			}
			return writeICSFile(c.Context, path)
		},
	}
}

// writeICSFile writes the event to path. A failed close is reported because
// buffered data may not have reached the disk.
func writeICSFile(ctx context.Context, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return services.NewCalendarService().WriteICS(ctx, models.CommunionEvent(), f)
}
