package api

import (
	"github.com/campuslink/peerhelp-api/lifecycle"
	"github.com/campuslink/peerhelp-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrInvalidRequestState.Error(),
		1202: lifecycle.ErrForbidden.Error(),
		1203: lifecycle.ErrAlreadyAccepted.Error(),
		1204: lifecycle.ErrResponseNotFound.Error(),
		1205: store.ErrStoreUnavailable.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorRequestNotFound     = errorJSON(1200)
	errorInvalidRequestState = errorJSON(1201)
	errorForbidden           = errorJSON(1202)
	// errorAlreadyAccepted keeps its own code: the UI must be able to
	// tell a lost accept race from a generic failure
	errorAlreadyAccepted  = errorJSON(1203)
	errorResponseNotFound = errorJSON(1204)
	errorStoreUnavailable = errorJSON(1205)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// validationError carries the concrete reason of a rejected payload
// back to the caller under the invalid-parameters code.
func validationError(err *lifecycle.ValidationError) ErrorResponse {
	return ErrorResponse{
		Code:    1010,
		Message: err.Error(),
	}
}
