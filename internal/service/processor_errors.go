package service

import (
	"errors"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/pkg/apperror"
)

// processorError maps a processor failure to an EXT_001 error, carrying the
// raw response when there is one.
func processorError(fallback string, err error) *apperror.AppError {
	var pe *domain.ProcessorError
	if errors.As(err, &pe) {
		msg := pe.Message
		if msg == "" {
			msg = fallback
		}
		return apperror.ExternalProcessor(msg, pe.Raw, err)
	}
	return apperror.ExternalProcessor(fallback, nil, err)
}

// definitelyRejected reports whether the processor answered with a client
// error, meaning the request was refused and nothing was executed. Timeouts,
// transport failures and 5xx answers leave the outcome unknown.
func definitelyRejected(err error) bool {
	var pe *domain.ProcessorError
	return errors.As(err, &pe) && pe.StatusCode >= 400 && pe.StatusCode < 500
}
