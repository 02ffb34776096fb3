package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

func TestImageFileID(t *testing.T) {
	photo := &tgbotapi.Message{Photo: []tgbotapi.PhotoSize{
		{FileID: "small", Width: 90},
		{FileID: "large", Width: 1280},
	}}
	id, ok := imageFileID(photo)
	require.True(t, ok)
	require.Equal(t, "large", id)

	doc := &tgbotapi.Message{Document: &tgbotapi.Document{FileID: "doc", MimeType: "image/png"}}
	id, ok = imageFileID(doc)
	require.True(t, ok)
	require.Equal(t, "doc", id)

	pdf := &tgbotapi.Message{Document: &tgbotapi.Document{FileID: "pdf", MimeType: "application/pdf"}}
	_, ok = imageFileID(pdf)
	require.False(t, ok)

	_, ok = imageFileID(&tgbotapi.Message{Text: "hi"})
	require.False(t, ok)
}
