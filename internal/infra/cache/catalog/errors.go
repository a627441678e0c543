package catalog

import "errors"

var (
	// ErrMarshal возвращается, если значение нельзя сериализовать в JSON
	ErrMarshal = errors.New("catalog.cache: failed to marshal value")

	// ErrUnmarshal возвращается, если значение в кеше повреждено
	ErrUnmarshal = errors.New("catalog.cache: failed to unmarshal value")

	// ErrRedis возвращается при ошибке redis
	ErrRedis = errors.New("catalog.cache: redis error")
)
