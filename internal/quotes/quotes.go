// Package quotes serves the saving-motivation messages rotated daily on the dashboard.
package quotes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed messages.json
var messagesJSON []byte

// Message is one motivation message.
type Message struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

var (
	loadOnce sync.Once
	messages []Message
	loadErr  error
)

// Messages returns the embedded message list.
func Messages() ([]Message, error) {
	loadOnce.Do(func() {
		var doc struct {
			Messages []Message `json:"saving_motivation_messages"`
		}
		if err := json.Unmarshal(messagesJSON, &doc); err != nil {
			loadErr = fmt.Errorf("failed to decode motivation messages: %w", err)
			return
		}
		messages = doc.Messages
	})
	return messages, loadErr
}

// IDForDay maps a day of the month onto a message ID in 1..30.
func IDForDay(day int) int {
	if day < 1 {
		day = 1
	}
	return ((day-1)%30 + 1)
}

// ForDay returns the message for a day of the month, falling back to the
// first message when no message carries the computed ID.
func ForDay(day int) (Message, error) {
	list, err := Messages()
	if err != nil {
		return Message{}, err
	}
	if len(list) == 0 {
		return Message{}, fmt.Errorf("no motivation messages available")
	}
	id := IDForDay(day)
	for _, m := range list {
		if m.ID == id {
			return m, nil
		}
	}
	return list[0], nil
}
