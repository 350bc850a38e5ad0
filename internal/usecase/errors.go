package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/surfquest-catalog/internal/infrastructure/surfapi"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
)

// backendError переводит ошибку клиента бэкенда в AppError
func backendError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := pkgerrors.As(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *surfapi.APIError
	if !errors.As(err, &apiErr) {
		return pkgerrors.ErrBackendUnavailable.Wrap(err)
	}

	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		return pkgerrors.ErrNotFound.Wrap(err)
	case surfapi.IsUnauthorized(err):
		return pkgerrors.ErrUnauthorized.Wrap(err)
	case surfapi.IsClientError(err):
		appErr := pkgerrors.ErrBackendError.Wrap(err)
		if apiErr.Detail != "" {
			appErr = appErr.WithMessage(apiErr.Detail)
		}
		return appErr
	default:
		return pkgerrors.ErrBackendUnavailable.Wrap(err)
	}
}
