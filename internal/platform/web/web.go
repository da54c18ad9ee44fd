// Package web holds the JSON response helpers shared by module handlers.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// Money goes out as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Fail writes err as {"success": false, "error": ...} with the status its
// kind maps to. Server-side failures are logged; client errors are not.
func Fail(w http.ResponseWriter, log *logging.Logger, entity string, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed", logging.Fields{Entity: entity, Status: status, Error: err.Error()})
	}
	Respond(w, status, map[string]interface{}{"success": false, "error": err.Error()})
}

// Decode reads a JSON body into v. Decode errors are validation errors.
func Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}
	return nil
}
