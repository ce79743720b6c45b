package delete_slot_template

import (
	"context"
)

type FacilitiesService interface {
	DeleteSlotTemplate(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
