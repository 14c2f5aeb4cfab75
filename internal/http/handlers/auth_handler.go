package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/auth"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

type issueTokenRequest struct {
	Email string `json:"email"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs an identity token for the supplied email. Issuance
// deliberately performs no credential check: the login provider in front of
// this API is the trust boundary, and only it requests tokens.
func (h *Handlers) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	token, err := auth.NewAccessToken(req.Email, h.config.Auth.JWTSecret, h.config.Auth.AccessTokenTTL)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to sign token", "error", err)
		response.InternalError(w, "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, issueTokenResponse{Token: token})
}
