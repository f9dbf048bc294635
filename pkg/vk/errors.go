package vk

import "errors"

// Ошибки конвейера анализа. Любая из них прерывает запрос целиком:
// частичный результат наружу не отдаётся.
var (
	// ErrInvalidInput — параметры запроса не разобрались: пустая ссылка или кривая дата.
	ErrInvalidInput = errors.New("некорректные параметры запроса")
	// ErrNotFound — utils.resolveScreenName ничего не вернул.
	ErrNotFound = errors.New("сообщество не найдено, проверьте ссылку")
	// ErrDetailsUnavailable — сообщество разрешилось, но детали получить не удалось.
	ErrDetailsUnavailable = errors.New("не удалось получить данные сообщества")
)

// APIError — ошибка, которую VK вернул в конверте ответа.
// Текст показываем пользователю без изменений.
type APIError struct {
	Method  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "VK API вернул ошибку на метод " + e.Method
	}
	return e.Message
}
