package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/manager"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/utils"
	"github.com/Goofygiraffe06/barber/store"
)

// RegisterHandler serves POST /users.
func RegisterHandler(userStore *store.SQLiteStore, mgr *manager.WorkManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req models.CreateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			logging.WarnLog("Registration failed: invalid JSON")
			respondError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		emailHash := utils.HashEmail(req.Email)

		if err := validate.Struct(req); err != nil {
			logging.WarnLog("Registration failed: validation error [%s]", emailHash)
			respondError(w, http.StatusBadRequest, "Validation failed")
			return
		}

		var hash string
		err := mgr.RunCrypto(r.Context(), func(ctx context.Context) error {
			var err error
			hash, err = auth.HashPassword(req.Password)
			return err
		})
		if err != nil {
			if respondPoolError(w, err) {
				return
			}
			logging.ErrorLog("Registration failed: hashing [%s]: %v", emailHash, err)
			respondError(w, http.StatusInternalServerError, "Failed to save user")
			return
		}

		user := models.StoredUser{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}

		dbStart := time.Now()
		err = mgr.RunDB(r.Context(), func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			return userStore.AddUser(ctx, user)
		})
		dbDuration := time.Since(dbStart)

		switch {
		case errors.Is(err, store.ErrUserExists):
			logging.WarnLog("Registration failed: user exists [%s]", emailHash)
			respondError(w, http.StatusConflict, "User already exists")
			return
		case err != nil:
			if respondPoolError(w, err) {
				return
			}
			logging.ErrorLog("Registration failed: database error [%s]: %v", emailHash, err)
			respondError(w, http.StatusInternalServerError, "Failed to save user")
			return
		}

		logging.InfoLog("Registration completed [%s] %v (db: %v)", emailHash, time.Since(start), dbDuration)
		respondJSON(w, http.StatusCreated, user.Public())
	}
}
