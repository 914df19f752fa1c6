package jamai

import (
	"errors"
	"fmt"
)

// ErrUnavailable возвращается при транспортной ошибке или не-2xx статусе от JamAI
var ErrUnavailable = errors.New("jamai service unavailable")

// MalformedResponseError возвращается, когда JamAI ответил успешно,
// но содержимое ответа не соответствует ожидаемой JSON-схеме
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed jamai response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed jamai response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
