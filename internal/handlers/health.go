package handlers

import "net/http"

// Health reports whether the user directory is reachable.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err)
		http.Error(w, "unhealthy", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok"))
}
