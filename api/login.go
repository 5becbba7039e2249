package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/manager"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/utils"
	"github.com/Goofygiraffe06/barber/store"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// unknownUserHash is compared against when the email has no account, so a
// miss costs the same bcrypt work as a hit.
func unknownUserHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = auth.HashPassword("barber-unknown-user")
	})
	return dummyHash
}

// LoginHandler serves POST /sessions.
func LoginHandler(userStore *store.SQLiteStore, mgr *manager.WorkManager, signer *auth.SessionSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req models.Credentials
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		emailHash := utils.HashEmail(req.Email)

		if err := validate.Struct(req); err != nil {
			logging.WarnLog("Login failed: validation error [%s]", emailHash)
			respondError(w, http.StatusBadRequest, "Validation failed")
			return
		}

		var user models.StoredUser
		err := mgr.RunDB(r.Context(), func(ctx context.Context) error {
			var err error
			user, err = userStore.GetUserByEmail(ctx, req.Email)
			return err
		})
		found := err == nil
		if err != nil && !errors.Is(err, store.ErrUserNotFound) {
			if respondPoolError(w, err) {
				return
			}
			logging.ErrorLog("Login failed: database error [%s]: %v", emailHash, err)
			respondError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		hash := user.PasswordHash
		if !found {
			hash = unknownUserHash()
		}
		err = mgr.RunCrypto(r.Context(), func(ctx context.Context) error {
			return auth.CheckPassword(hash, req.Password)
		})
		if respondPoolError(w, err) {
			return
		}
		if err != nil || !found {
			// Do NOT reveal user existence
			logging.WarnLog("Login failed: invalid credentials [%s]", emailHash)
			respondError(w, http.StatusUnauthorized, "Incorrect email/password combination")
			return
		}

		token, err := signer.Issue(auth.Session{UserID: user.ID, Name: user.Name, Email: user.Email})
		if err != nil {
			logging.ErrorLog("Login failed: token issue [%s]: %v", emailHash, err)
			respondError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		logging.InfoLog("Login success [%s] %v", emailHash, time.Since(start))
		respondJSON(w, http.StatusOK, models.SessionResponse{User: user.Public(), Token: token})
	}
}
