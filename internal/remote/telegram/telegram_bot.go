package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/relictools/relicrater/internal/event"
	"github.com/relictools/relicrater/internal/rating"
)

type Bot struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *slog.Logger
	store  *rating.Store
}

func NewBot(token string, chatID int64, logger *slog.Logger, store *rating.Store) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		bot:    botAPI,
		chatID: chatID,
		logger: logger,
		store:  store,
	}, nil
}

// Handle forwards rating and mutation events to the configured chat.
func (b *Bot) Handle(_ context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.RelicRatedEvent:
		text := fmt.Sprintf("Relic rated: %s / %s\nScore: %.2f%% - %.2f%%\nCharacters: %s",
			evt.SetName, evt.PartName, evt.MinPercent, evt.MaxPercent, strings.Join(evt.Characters, ", "))
		return b.sendMessage(text)
	case event.MutationFailedEvent:
		return b.sendMessage("Template update failed: " + evt.Message())
	}
	return nil
}

// Start consumes chat commands until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	offset, err := b.getLatestOffset()
	if err != nil {
		return err
	}

	u := tgbotapi.NewUpdate(offset)
	u.Timeout = 5
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			for range updates {
			}
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Chat == nil || update.Message.Chat.ID != b.chatID {
				continue
			}
			switch strings.ToLower(update.Message.Text) {
			case "templates":
				snapshot := b.store.Snapshot()
				if err := b.sendMessage(fmt.Sprintf("%d rating template(s) loaded", len(snapshot))); err != nil {
					b.logger.Error("error sending telegram reply", slog.Any("error", err))
				}
			}
		}
	}
}

func (b *Bot) getLatestOffset() (int, error) {
	upds, err := b.bot.GetUpdates(tgbotapi.NewUpdate(-1))
	if err != nil {
		return 0, err
	}
	offset := 0
	if len(upds) > 0 {
		offset = upds[0].UpdateID + 1
	}
	return offset, nil
}

func (b *Bot) sendMessage(text string) error {
	_, err := b.bot.Send(tgbotapi.NewMessage(b.chatID, text))
	return err
}
