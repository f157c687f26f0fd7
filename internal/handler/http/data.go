package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// accountData returns the public profile of the authenticated account.
// Sensitive fields (password hash, OTP state) never leave the service
// layer; the response carries only what [models.Account.PublicView] exposes.
func (h *Handler) accountData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in request context")
		writeFailure(w, authFailureMessage)
		return
	}

	data, err := h.services.AccountService.AccountData(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("fetching account data failed")
		writeFailure(w, messageFromError(err))
		return
	}

	utils.WriteJSON(w, models.AccountDataResponse{
		Success:  true,
		UserData: data,
	}, http.StatusOK)
}
