package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/cockroachdb/errors"

	"serde-api/lib/pagination"
	"serde-api/lib/serde"
)

// --------------------------------------------------------------------------
// Response helpers
// --------------------------------------------------------------------------

// writeJSON renders v as the JSON response body with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to write response: %v", err)
	}
}

// writeError renders the JSON error envelope
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requireField decodes the request body as a JSON object and returns the raw
// value of the given field. A missing field (or an unreadable body) yields a
// 400 response and ok=false.
func requireField(w http.ResponseWriter, r *http.Request, field string) (json.RawMessage, bool) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return nil, false
	}
	raw, ok := body[field]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("field '%s' not provided", field))
		return nil, false
	}
	return raw, true
}

// --------------------------------------------------------------------------
// Serializer endpoints
// --------------------------------------------------------------------------

// handleSerialize serializes the request body (an arbitrary JSON value) with
// the configured serializer
func (s *apiServer) handleSerialize(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read request body")
		return
	}

	value, err := s.serializer.Deserialize(string(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("request body is not valid JSON: %v", err))
		return
	}

	text, err := s.serializer.Serialize(value)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, serde.ErrUnsupportedType) {
			status = http.StatusBadRequest
		}
		writeError(w, status, fmt.Sprintf("failed to serialize: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"serialized": text})
}

// handleDeserialize parses the json_string field into its plain value
func (s *apiServer) handleDeserialize(w http.ResponseWriter, r *http.Request) {
	raw, ok := requireField(w, r, "json_string")
	if !ok {
		return
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		writeError(w, http.StatusBadRequest, "field 'json_string' must be a string")
		return
	}

	value, err := s.serializer.Deserialize(text)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to deserialize: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deserialized": value})
}

// handleValidate reports whether the json_string field is valid JSON
func (s *apiServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, ok := requireField(w, r, "json_string")
	if !ok {
		return
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		writeError(w, http.StatusBadRequest, "field 'json_string' must be a string")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"is_valid": s.serializer.IsValidJSON(text)})
}

// --------------------------------------------------------------------------
// Pagination endpoint
// --------------------------------------------------------------------------

// demoListSize is the length of the built-in demonstration list served on GET
const demoListSize = 100

// demoItems builds the demonstration list
func demoItems() []any {
	items := make([]any, demoListSize)
	for i := range items {
		items[i] = map[string]any{
			"id":    i + 1,
			"name":  fmt.Sprintf("Item %d", i+1),
			"value": (i + 1) * 10,
		}
	}
	return items
}

// handleList serves a paginated listing. POST paginates the posted items, GET
// paginates the demonstration list. The limit/offset parameters select
// limit/offset pagination, otherwise page-number pagination is used.
func (s *apiServer) handleList(w http.ResponseWriter, r *http.Request) {
	var items []any
	if r.Method == http.MethodPost {
		raw, ok := requireField(w, r, "items")
		if !ok {
			return
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			writeError(w, http.StatusBadRequest, "field 'items' must be a list")
			return
		}
	} else {
		items = demoItems()
	}

	var paginator pagination.IPaginator
	if pagination.WantsLimitOffset(r) {
		paginator = pagination.NewLimitOffsetPaginator(s.config.PageSize, s.config.MaxPageSize)
	} else {
		paginator = pagination.NewPageNumberPaginator(s.config.PageSize, s.config.MaxPageSize)
	}

	writeJSON(w, http.StatusOK, paginator.Paginate(items, r))
}

// --------------------------------------------------------------------------
// Converter endpoint
// --------------------------------------------------------------------------

// handleToDict converts the data field into its plain tagged form
func (s *apiServer) handleToDict(w http.ResponseWriter, r *http.Request) {
	raw, ok := requireField(w, r, "data")
	if !ok {
		return
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("field 'data' is not valid JSON: %v", err))
		return
	}

	result, err := serde.ToPlain(value)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, serde.ErrUnsupportedType) {
			status = http.StatusBadRequest
		}
		writeError(w, status, fmt.Sprintf("failed to convert: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

// --------------------------------------------------------------------------
// Service endpoints
// --------------------------------------------------------------------------

// handleHealth is the health check endpoint
func (s *apiServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics exposes request counters in Prometheus text format
func (s *apiServer) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	metrics.WritePrometheus(w, true)
}
