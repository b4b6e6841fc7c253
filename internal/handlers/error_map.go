package handlers

import (
	"net/http"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/logger"
)

func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, internalMessage string) {
	switch {
	case apperror.Is(err, apperror.KindValidation):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case apperror.Is(err, apperror.KindPublicAPI),
		apperror.Is(err, apperror.KindOfficeManagerAPI),
		apperror.Is(err, apperror.KindShiftManagerAPI),
		apperror.Is(err, apperror.KindPrivateAPI),
		apperror.Is(err, apperror.KindMarkupShape):
		if log != nil {
			log.WithError(err).Error(internalMessage)
		}
		writeErrorResponse(w, http.StatusBadGateway, internalMessage)
	default:
		if log != nil {
			log.WithError(err).Error(internalMessage)
		}
		writeErrorResponse(w, http.StatusInternalServerError, internalMessage)
	}
}
