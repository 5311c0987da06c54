package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/internal/validators"
)

var errorStatusMap = map[error]int{
	errInvalidID:                       http.StatusBadRequest,
	utils.ErrInvalidJSON:               http.StatusBadRequest,
	validators.ErrInvalidRequest:       http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrGroupNameEmpty:          http.StatusBadRequest,
	service.ErrInvalidMembership:       http.StatusBadRequest,
	service.ErrGroupLocked:             http.StatusConflict,
	service.ErrClientLocked:            http.StatusConflict,

	options.ErrUnknownOption:  http.StatusNotFound,
	options.ErrTypeMismatch:   http.StatusBadRequest,
	options.ErrNotOverridable: http.StatusBadRequest,
	options.ErrDerivedOption:  http.StatusBadRequest,

	store.ErrLoginAlreadyExists:  http.StatusConflict,
	store.ErrNoOperatorWasFound:  http.StatusNotFound,
	store.ErrClientNotFound:      http.StatusNotFound,
	store.ErrClientAlreadyExists: http.StatusConflict,
	store.ErrGroupNotFound:       http.StatusNotFound,
	store.ErrGroupAlreadyExists:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// a corrupt stored value matches ErrTypeMismatch too
	if errors.Is(err, options.ErrCorruptValue) {
		return http.StatusInternalServerError
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal errors
// are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
