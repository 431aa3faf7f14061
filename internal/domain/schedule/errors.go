package schedule

import "errors"

var (
	ErrUnknownDay        = errors.New("unknown weekday")
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrInvalidTimeFormat = errors.New("invalid time format")
)
