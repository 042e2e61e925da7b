package handler

import (
	"errors"
	"net/http"

	"marketplace-payments/internal/adapter/http/middleware"
	"marketplace-payments/internal/core/domain"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// principal returns the authenticated caller or writes a 401.
func principal(c *gin.Context) (*domain.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		abort(c, apperror.ErrInvalidToken())
		return nil, false
	}
	return p, true
}

// vendorPrincipal returns the caller's vendor ID or writes a 403.
func vendorPrincipal(c *gin.Context) (*domain.Principal, uuid.UUID, bool) {
	p, ok := principal(c)
	if !ok {
		return nil, uuid.Nil, false
	}
	if p.Role != domain.RoleVendor || p.VendorID == nil {
		abort(c, apperror.ErrForbidden())
		return nil, uuid.Nil, false
	}
	return p, *p.VendorID, true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abort(c, apperror.Validation("Invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// bindError maps a binding failure to a validation error. Oversized bodies
// surface as 413.
func bindError(err error) *apperror.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.New(apperror.KindValidation, "VAL_002", "Request body too large", http.StatusRequestEntityTooLarge)
	}
	return apperror.Validation(err.Error())
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}
