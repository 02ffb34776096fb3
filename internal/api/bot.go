package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "care-label-reader/internal/application"
	"care-label-reader/internal/container"
	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/infrastructure/acquisition"
)

const (
	msgStart = `👋 Привет! Я бот для расшифровки символов на этикетках одежды.

📸 Отправьте мне фото этикетки, и я расскажу, как ухаживать за вещью.

📋 Команды:
/read — распознать этикетку
/last — показать последнюю расшифровку
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото этикетки (можно файлом)
2️⃣ Бот найдёт этикетку и символы ухода
3️⃣ Вы получите расшифровку и фото с пронумерованными символами

💡 Рекомендации:
• Положите этикетку на цветную ткань или фон
• Снимайте прямо, без сильного наклона
• Символы должны быть чёткими

📋 Команды:
/read — распознать этикетку
/last — последняя расшифровка
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото этикетки."
	msgCancelled       = "❌ Операция отменена. Отправьте /read для новой этикетки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото этикетки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Распознаю этикетку..."
	msgBusy            = "⏳ Предыдущая этикетка ещё обрабатывается, подождите."
	msgNoLabel         = "🔍 Этикетка не найдена. Положите её на контрастный фон и попробуйте снова."
	msgNoLast          = "Вы ещё не присылали этикеток."
	msgNotImage        = "📎 Этот файл не похож на изображение."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."

	downloadTimeout = 30 * time.Second
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	labels     *app.LabelService
	httpClient *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		users:      c.UserService,
		labels:     c.LabelService,
		httpClient: &http.Client{Timeout: downloadTimeout},
	}, nil
}

// Run запускает основной цикл обработки сообщений. Каждое сообщение
// обрабатывается в своей горутине, чтобы распознавание не задерживало чат.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Фото или картинка, отправленная файлом
	if fileID, ok := imageFileID(msg); ok {
		b.handleImage(ctx, msg, fileID)
		return
	}
	if msg.Document != nil {
		b.sendMessage(msg.Chat.ID, msgNotImage)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		if _, err := b.users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "read":
		if _, err := b.users.BeginRead(ctx, user.ID, msg.Chat.ID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "last":
		if len(user.LastReading) == 0 {
			b.sendMessage(msg.Chat.ID, msgNoLast)
			return
		}
		b.sendMessage(msg.Chat.ID, strings.Join(user.LastReading, "\n"))

	case "cancel":
		if _, err := b.users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleImage скачивает картинку и распознаёт этикетку
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	log.Printf("Received image: %d bytes from user %d", len(imageData), msg.From.ID)

	out, err := b.labels.ReadForUser(ctx, msg.From.ID, msg.Chat.ID, acquisition.NewBytesSource(imageData))
	switch {
	case errors.Is(err, app.ErrBusy):
		b.sendMessage(msg.Chat.ID, msgBusy)
		return
	case errors.Is(err, entity.ErrNoLabelFound):
		b.sendMessage(msg.Chat.ID, msgNoLabel)
		return
	case err != nil:
		log.Printf("Error reading label: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	text := strings.Join(out.Reading.Codes(), "\n")
	if out.Description != nil {
		text = out.Description.Text
	}
	b.sendMessage(msg.Chat.ID, text)

	if len(out.Annotated) > 0 {
		b.sendPhoto(msg.Chat.ID, out.Annotated)
	}
}

// imageFileID выбирает файл: самое большое фото или документ-картинку
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// sendPhoto отправляет размеченную этикетку
func (b *Bot) sendPhoto(chatID int64, jpeg []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "label.jpg", Bytes: jpeg})
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}
