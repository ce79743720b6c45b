package delete_facility

import (
	"context"
)

type FacilitiesService interface {
	DeleteFacility(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
