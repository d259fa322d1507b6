package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setCookieReq struct {
	Cookie string `json:"cookie"`
}

func (h SecretsHandler) SetLinkedInCookie(w http.ResponseWriter, r *http.Request) {
	var req setCookieReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	account := strings.TrimSpace(cfg.Sources.LinkedIn.KeyringAccount)
	if account == "" {
		http.Error(w, "sources.linkedin.keyring_account is not configured", http.StatusBadRequest)
		return
	}

	if err := secrets.SetLinkedInCookie(account, req.Cookie); err != nil {
		http.Error(w, "failed to store cookie: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
