package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	sloggger "github.com/relictools/relicrater/cmd/relicrater/log"
	"github.com/relictools/relicrater/internal/capture"
	"github.com/relictools/relicrater/internal/config"
	"github.com/relictools/relicrater/internal/event"
	"github.com/relictools/relicrater/internal/kvstore"
	"github.com/relictools/relicrater/internal/rating"
	"github.com/relictools/relicrater/internal/remote/discord"
	ngrokremote "github.com/relictools/relicrater/internal/remote/ngrok"
	"github.com/relictools/relicrater/internal/remote/telegram"
	"github.com/relictools/relicrater/internal/server"
	"golang.org/x/sync/errgroup"
)

// wrapWithRecover wraps a function with panic recovery logic
func wrapWithRecover(logger *slog.Logger, f func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				stackTrace := debug.Stack()
				errMsg := fmt.Sprintf("panic recovered: %v\nStacktrace: %s", r, stackTrace)
				logger.Error(errMsg)
				sloggger.FlushLog()
			}
		}()
		return f()
	}
}

func main() {
	err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err.Error())
	}

	logger, err := sloggger.NewLogger(config.Relic.Debug.Log, config.Relic.LogSaveDirectory)
	if err != nil {
		log.Fatalf("Error starting logger: %s", err.Error())
	}
	defer sloggger.FlushAndClose()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	eventListener := event.NewListener(logger)

	kv, err := kvstore.Open(config.Relic.StorePath, logger)
	if err != nil {
		logger.Error("Error opening template store", slog.Any("error", err))
		return
	}

	store := rating.NewStore(kv, eventListener, logger)
	if err := store.Load(); err != nil {
		logger.Error("Error loading rating templates", slog.Any("error", err))
		return
	}

	engine := rating.NewEngine(logger)
	capturer := capture.NewFileCapturer(config.Relic.Capture.SourceDirectory)
	srv := server.New(logger, store, engine, eventListener, capturer, config.Relic.Capture.WindowTitle)
	eventListener.Register(srv.HandleTemplatesUpdated)

	var ngrokTunnel *ngrokremote.Tunnel
	if config.Relic.Ngrok.Enabled {
		if config.Relic.Ngrok.Authtoken == "" && os.Getenv("NGROK_AUTHTOKEN") == "" {
			logger.Warn("ngrok enabled but no authtoken set; skipping tunnel start")
		} else {
			opts := ngrokremote.Options{
				LocalAddr:     fmt.Sprintf("http://localhost:%d", config.Relic.Server.Port),
				Authtoken:     config.Relic.Ngrok.Authtoken,
				Region:        config.Relic.Ngrok.Region,
				Domain:        config.Relic.Ngrok.Domain,
				BasicAuthUser: config.Relic.Ngrok.BasicAuthUser,
				BasicAuthPass: config.Relic.Ngrok.BasicAuthPass,
			}
			tunnel, err := ngrokremote.Start(ctx, opts)
			if err != nil {
				logger.Error("ngrok tunnel failed to start", slog.Any("error", err))
			} else {
				logger.Info("ngrok tunnel established", slog.String("url", tunnel.URL()))
			}
			ngrokTunnel = tunnel
		}
	}

	if config.Relic.Discord.Enabled {
		notifier := discord.NewNotifier(config.Relic.Discord.WebhookURL)
		eventListener.Register(notifier.Handle)
	}

	if config.Relic.Telegram.Enabled {
		telegramBot, err := telegram.NewBot(config.Relic.Telegram.Token, config.Relic.Telegram.ChatID, logger, store)
		if err != nil {
			logger.Error("Telegram could not been initialized", slog.Any("error", err))
			return
		}

		eventListener.Register(telegramBot.Handle)
		g.Go(wrapWithRecover(logger, func() error {
			return telegramBot.Start(ctx)
		}))
	}

	g.Go(wrapWithRecover(logger, func() error {
		defer cancel()
		return srv.Listen(config.Relic.Server.Port)
	}))

	g.Go(wrapWithRecover(logger, func() error {
		defer cancel()
		return eventListener.Listen(ctx)
	}))

	g.Go(wrapWithRecover(logger, func() error {
		<-ctx.Done()
		logger.Info("relicrater shutting down...")
		if err := srv.Stop(); err != nil {
			logger.Error("error stopping local server", slog.Any("error", err))
		}
		if ngrokTunnel != nil {
			if closeErr := ngrokTunnel.Close(); closeErr != nil {
				logger.Error("error stopping ngrok tunnel", slog.Any("error", closeErr))
			}
		}
		return nil
	}))

	if err := g.Wait(); err != nil {
		cancel()
		logger.Error("Error running relicrater", slog.Any("error", err))
		return
	}

	sloggger.FlushAndClose()
}
