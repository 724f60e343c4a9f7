package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListRecent(ctx context.Context) ([]models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing the latest submissions.
// @Summary List recent submissions
// @Description Returns at most 100 submissions, newest first
// @Tags users
// @Produce json
// @Success 200 {object} models.UsersResponse "Submissions"
// @Failure 500 {object} models.ErrorResponse "DB error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListRecent(r.Context())
		if err != nil {
			logger.Log.Errorw("DB query error", "error", err)
			writeError(w, http.StatusInternalServerError, errDB)
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}
		writeJSON(w, http.StatusOK, models.UsersResponse{Success: true, Users: users})
	}
}
