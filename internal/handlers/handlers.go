package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func sendJSONOrLog(w http.ResponseWriter, log *logrus.Logger, v any) {
	sendStatusJSONOrLog(w, log, http.StatusOK, v)
}

// sendStatusJSONOrLog marshals v before committing to status, so a
// marshalling failure still turns into a 500.
func sendStatusJSONOrLog(w http.ResponseWriter, log *logrus.Logger, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.WithFields(logrus.Fields{
			"response": v,
			"error":    err,
		}).Error("unable to send response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		log.WithError(err).Error("unable to send response")
	}
}

func sendErrorOrLog(w http.ResponseWriter, log *logrus.Logger, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload, _ := json.Marshal(wrapError(err))
	if _, werr := w.Write(payload); werr != nil {
		log.WithError(werr).Error("unable to send error response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
