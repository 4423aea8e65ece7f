package handlers

import (
	"errors"
	"net/http"

	"dental_lab/internal/adapter/export"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"
	"dental_lab/internal/usecase/draft"
	"dental_lab/pkg"
)

var (
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errDraftNotStarted     = pkg.NewDomainErrorSimple("DRAFT_SESSION_NOT_STARTED", "Open the draft session first", http.StatusConflict)
	errConfirmationNeeded  = pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "This action needs explicit confirmation", http.StatusPreconditionRequired)
	errInvalidExportFormat = pkg.NewDomainErrorSimple("INVALID_EXPORT_FORMAT", "Format must be xlsx or csv", http.StatusBadRequest)
)

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// validationError names the offending field of an *entities.ValidationError.
func validationError(err error) (*pkg.AppError, bool) {
	var ve *entities.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	return pkg.NewDomainError("VALIDATION_ERROR", ve.Message, err, http.StatusUnprocessableEntity).WithField(ve.Field), true
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceName), errors.Is(err, usecase.ErrInvalidServicePrice),
		errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, export.ErrMissingColumn):
		return pkg.NewDomainError("INVALID_SPREADSHEET", err.Error(), err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}

func mapDirectoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidClinicID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClinicNotFound):
		return pkg.NewDomainErrorSimple("CLINIC_NOT_FOUND", "Clinic not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapDraftError(err error) *pkg.AppError {
	if appErr, ok := validationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, draft.ErrConfirmationRequired):
		return errConfirmationNeeded
	case errors.Is(err, draft.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("DRAFT_SESSION_CLOSED", "Draft session closed", http.StatusConflict)
	case errors.Is(err, draft.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("DRAFT_SUBMISSION_IN_PROGRESS", "The draft is already being submitted", http.StatusConflict)
	case errors.Is(err, draft.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, draft.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, draft.ErrServiceInactive):
		return pkg.NewDomainErrorSimple("SERVICE_INACTIVE", "Service is no longer offered", http.StatusConflict)
	case errors.Is(err, draft.ErrClinicNotFound):
		return pkg.NewDomainErrorSimple("CLINIC_NOT_FOUND", "Clinic not found", http.StatusNotFound)
	case errors.Is(err, draft.ErrDentistNotFound):
		return pkg.NewDomainErrorSimple("DENTIST_NOT_FOUND", "Dentist not found", http.StatusNotFound)
	case errors.Is(err, draft.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	default:
		return mapWorkOrderError(err)
	}
}

func mapWorkOrderError(err error) *pkg.AppError {
	if appErr, ok := validationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderDelivered):
		return pkg.NewDomainErrorSimple("WORK_ORDER_DELIVERED", "Work order already delivered", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Work order status changed, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderIncomplete):
		return pkg.NewDomainError("WORK_ORDER_INCOMPLETE", "Work order saved without its services; contact support", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("REMOTE_ERROR", "The operation failed, please retry", err, http.StatusBadGateway)
	}
}

func mapSubscriptionPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPlan), errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSubscriptionPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
