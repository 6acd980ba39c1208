package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"smarthire/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

// idFromPath extracts the decimal id segmentsFromEnd positions from the end
// of the path, so both /jobs/42 and /applications/42/status resolve.
func idFromPath(r *http.Request, segmentsFromEnd int) (int64, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	index := len(parts) - segmentsFromEnd
	if index < 0 || index >= len(parts) {
		return 0, common.NewError(common.CodeValidation, "invalid id", nil)
	}
	return common.ParseID(parts[index])
}

func queryInt(r *http.Request, key string, fallback int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
