package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/dto"
	"github.com/alexrkaufman/strawcoin/internal/service/sessionservice"
	pkgauth "github.com/alexrkaufman/strawcoin/pkg/auth"
	"github.com/alexrkaufman/strawcoin/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, username string, isPerformer bool, passphrase string) (*sessionservice.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Remaining(session *domain.Session) (time.Duration, bool)
	HasPrivilegedAccess(username string) bool
}

type AuthHandler struct {
	sessionService Service
}

func New(sessionService Service) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Open the single session allowed per user. Unknown usernames are registered with the starting balance.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid username"
//	@Failure		401		{object}	utils.Response	"Invalid privileged passphrase"
//	@Failure		409		{object}	utils.Response	"Session already active"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, string(domain.CodeValidation), "Invalid request body")
		return
	}

	result, err := h.sessionService.Login(r.Context(), req.Username, req.IsPerformer, req.Passphrase)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.CookieName,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", "Bearer "+result.Token)

	message := fmt.Sprintf("Welcome back, %s", result.User.Username)
	if result.Created {
		message = fmt.Sprintf("Welcome to the market, %s", result.User.Username)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Status:     string(domain.CodeSuccess),
		Message:    message,
		Token:      result.Token,
		User:       dto.FromUser(*result.User),
		Created:    result.Created,
		Privileged: h.sessionService.HasPrivilegedAccess(result.User.Username),
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	End the current session and clear the session cookie.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"Session expired"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := pkgauth.SessionFromContext(r.Context())
	if !ok {
		utils.RespondWithDomainError(w, domain.ErrSessionExpired)
		return
	}

	if err := h.sessionService.Logout(r.Context(), session.ID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Status:  string(domain.CodeSuccess),
		Message: "Logged out",
	})
}

// SessionStatus godoc
//
//	@Summary		Session status
//	@Description	Report who is logged in and how long the session stays valid without activity.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"Session expired"
//	@Router			/api/session-status [get]
func (h *AuthHandler) SessionStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := pkgauth.SessionFromContext(r.Context())
	if !ok {
		utils.RespondWithDomainError(w, domain.ErrSessionExpired)
		return
	}

	remaining, expires := h.sessionService.Remaining(session)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionStatusResponseDTO{
		Status:           string(domain.CodeSuccess),
		Username:         session.Username,
		Privileged:       h.sessionService.HasPrivilegedAccess(session.Username),
		Expires:          expires,
		RemainingSeconds: int64(remaining / time.Second),
	})
}
