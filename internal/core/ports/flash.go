package ports

import "context"

// Flash — одноразовое уведомление для пользователя
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FlashStore хранит уведомления между редиректом и следующим запросом
type FlashStore interface {
	Push(ctx context.Context, sessionID string, flash Flash) error
	// Pop возвращает все накопленные уведомления сессии и удаляет их
	Pop(ctx context.Context, sessionID string) ([]Flash, error)
}
