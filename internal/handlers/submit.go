package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
	"github.com/sbilibin2017/contact-form/internal/services"
)

//go:generate mockgen -source=submit.go -destination=submit_mock.go -package=handlers

const maxBodyBytes = 1 << 20

// Submitter defines the interface that the service must implement.
type Submitter interface {
	Submit(ctx context.Context, name, email, message string) (int64, error)
}

// NewSubmitHandler returns an HTTP handler storing one contact-form submission.
// @Summary Submit the contact form
// @Description Stores name, email and an optional message. Name and email are trimmed and must not be blank.
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param submitRequest body models.SubmitRequest true "Contact form"
// @Success 200 {object} models.SubmitResponse "Stored"
// @Failure 400 {object} models.ErrorResponse "Name and email required"
// @Failure 500 {object} models.ErrorResponse "DB error"
// @Router /submit [post]
func NewSubmitHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		req, err := decodeSubmitRequest(r)
		if err != nil {
			logger.Log.Warnw("failed to decode submit request", "error", err)
			writeError(w, http.StatusBadRequest, errInvalidBody)
			return
		}

		id, err := svc.Submit(r.Context(), req.Name, req.Email, req.Message)
		if err != nil {
			if errors.Is(err, services.ErrNameAndEmailRequired) {
				writeError(w, http.StatusBadRequest, errNameAndEmailRequired)
				return
			}
			logger.Log.Errorw("DB insert error", "error", err)
			writeError(w, http.StatusInternalServerError, errDB)
			return
		}

		writeJSON(w, http.StatusOK, models.SubmitResponse{Success: true, ID: id})
	}
}

// decodeSubmitRequest reads a JSON body, or form fields for any other content type.
// An empty JSON body decodes to an empty request.
func decodeSubmitRequest(r *http.Request) (models.SubmitRequest, error) {
	var req models.SubmitRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
		return req, nil
	}

	req.Name = r.PostFormValue("name")
	req.Email = r.PostFormValue("email")
	req.Message = r.PostFormValue("message")
	return req, nil
}
