package errcodes

// ErrorCode идентифицирует класс доменной ошибки.
type ErrorCode string

const (
	InternalServerError ErrorCode = "InternalServerError"
	TimeoutExceeded     ErrorCode = "TimeoutExceeded"
	ValidationError     ErrorCode = "ValidationError"

	// Коды цикла наблюдения за витриной
	FeedFetchFailed ErrorCode = "FeedFetchFailed" // Сеть/таймаут при запросе фида
	FeedUnavailable ErrorCode = "FeedUnavailable" // Non-200 / не-JSON ответ (no-data)
	DeliveryFailed  ErrorCode = "DeliveryFailed"  // Telegram не принял сообщение
	StateSaveFailed ErrorCode = "StateSaveFailed" // Не смогли записать состояние
	InvalidStoreURL ErrorCode = "InvalidStoreURL" // Мусор вместо базового URL
	InvalidChatID   ErrorCode = "InvalidChatID"   // Мусор вместо chat id
)
