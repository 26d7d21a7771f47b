package utils

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

var httpStatus = map[domain.Code]int{
	domain.CodeSuccess:             http.StatusOK,
	domain.CodeValidation:          http.StatusBadRequest,
	domain.CodeInvalidAmount:       http.StatusBadRequest,
	domain.CodeInsufficientFunds:   http.StatusBadRequest,
	domain.CodeSameParty:           http.StatusBadRequest,
	domain.CodeUserNotFound:        http.StatusNotFound,
	domain.CodeOfferNotFound:       http.StatusNotFound,
	domain.CodeDuplicateUser:       http.StatusConflict,
	domain.CodeSessionConflict:     http.StatusConflict,
	domain.CodeNoParticipants:      http.StatusConflict,
	domain.CodePrivilegedRecipient: http.StatusForbidden,
	domain.CodeSelfDealing:         http.StatusForbidden,
	domain.CodeForbidden:           http.StatusForbidden,
	domain.CodeSessionExpired:      http.StatusUnauthorized,
	domain.CodeInvalidCredentials:  http.StatusUnauthorized,
	domain.CodeOperationFailed:     http.StatusInternalServerError,
}

// HTTPStatus maps a result code to the status the API replies with.
func HTTPStatus(code domain.Code) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RespondWithDomainError writes err as a Response tagged with its result
// code. Store failures are not echoed to the client.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := domain.CodeOf(err)
	status := HTTPStatus(code)

	message := err.Error()
	var e *domain.Error
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		message = "Internal server error"
	} else if errors.As(err, &e) {
		message = e.Message
	}
	RespondWithError(w, status, string(code), message)
}
