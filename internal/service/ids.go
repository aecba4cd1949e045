package service

import "github.com/google/uuid"

// validID сообщает, похож ли id на первичный ключ. Все ключи — UUID в
// каноническом виде; остальные значения заведомо ничего не найдут, а Postgres
// отвергает их ошибкой типа, а не пустым результатом.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
