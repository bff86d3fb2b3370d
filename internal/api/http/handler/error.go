package handler

import (
	"errors"

	"github.com/dtroode/userdir/internal/model"
)

func outcomeFromError(err error, notFound string) Outcome {
	switch {
	case errors.Is(err, model.ErrMalformedKey), errors.Is(err, model.ErrMalformedFilter):
		return ClientError{Message: err.Error()}
	case errors.Is(err, model.ErrNotFound):
		return NotFound{Message: notFound}
	default:
		return ServerError{}
	}
}
