package helpcenter

import (
	"encoding/json"
	"net/http"

	"github.com/zondaerp/website/pkg/logging"
)

// Handler exposes GET /api/help/search.
type Handler struct {
	index  *Index
	logger *logging.Logger
}

// NewHandler creates the help-center handler.
func NewHandler(index *Index, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{index: index, logger: logger}
}

// Search handles GET /api/help/search?q=. An empty or absent query returns
// an empty result list rather than an error; the page treats it as "type to
// search".
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results := h.index.Search(q)
	if results == nil {
		results = []Result{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"query":   q,
		"results": results,
	}); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
