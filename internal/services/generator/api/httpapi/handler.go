// Package httpapi exposes the settings engine over HTTP/JSON.
//
// The handlers are thin: they decode request payloads, call the domain
// packages, and translate structured errors into status codes, user
// messages and a focus target naming the form section to highlight.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ctjot/seedgen/internal/services/generator/api/httpapi"

// Handler serves the generator settings API.
type Handler struct {
	presets PresetService
	tracer  trace.Tracer
}

// New builds a Handler over the given preset service.
func New(presets PresetService) *Handler {
	return &Handler{
		presets: presets,
		tracer:  otel.Tracer(tracerName),
	}
}

// Routes registers every API route on the mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/enums", h.traced("enums", h.handleEnums))
	mux.HandleFunc("GET /api/forced-flags", h.traced("forced_flags", h.handleForcedFlags))
	mux.HandleFunc("GET /api/objective-aliases", h.traced("objective_aliases", h.handleObjectiveAliases))
	mux.HandleFunc("POST /api/objectives/validate", h.traced("validate_objectives", h.handleValidateObjectives))
	mux.HandleFunc("POST /api/settings/validate", h.traced("validate_settings", h.handleValidateSettings))
	mux.HandleFunc("POST /api/settings/encode", h.traced("encode_settings", h.handleEncodeSettings))
	mux.HandleFunc("GET /api/presets", h.traced("list_presets", h.handleListPresets))
	mux.HandleFunc("POST /api/presets", h.traced("create_preset", h.handleCreatePreset))
	mux.HandleFunc("GET /api/presets/{id}", h.traced("get_preset", h.handleGetPreset))
	mux.HandleFunc("GET /api/seed", h.traced("seed_name", h.handleSeedName))
	mux.HandleFunc("GET /healthz", h.handleHealthz)
}

func (h *Handler) traced(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := h.tracer.Start(r.Context(), name)
		defer span.End()
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write json response: %v", err)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Focus   string `json:"focus,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	body := errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err, locale(r)),
		Focus:   focusTarget(code),
	}
	writeJSON(w, code.HTTPStatus(), map[string]any{"error": body})
}

func locale(r *http.Request) string {
	if lang := r.Header.Get("Accept-Language"); lang != "" {
		return lang
	}
	return apperrors.DefaultLocale
}

// focusTarget names the form section an error should send the user to.
func focusTarget(code apperrors.Code) string {
	switch code {
	case apperrors.CodeCharAssignIdentityUnassigned,
		apperrors.CodeCharAssignModelUnused,
		apperrors.CodeCharAssignBadChoices,
		apperrors.CodeCharAssignBadHexPack:
		return "char-rando"
	case apperrors.CodeLogicBudgetExceeded:
		return "extra-options"
	case apperrors.CodeFlagRestricted,
		apperrors.CodeUnknownFlag,
		apperrors.CodeUnknownMode:
		return "flags"
	case apperrors.CodeObjectiveEmpty,
		apperrors.CodeObjectiveInvalidWeight,
		apperrors.CodeObjectiveInvalidType,
		apperrors.CodeObjectiveWrongArity,
		apperrors.CodeObjectiveUnresolved,
		apperrors.CodeObjectiveInvalidCount:
		return "bucket"
	default:
		return ""
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodePresetInvalidJSON,
			"request body is not valid JSON", err))
		return false
	}
	return true
}

// toErrorBody converts an error to the response shape used by the
// validation endpoints.
func toErrorBody(r *http.Request, err error) errorBody {
	code := apperrors.GetCode(err)
	return errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err, locale(r)),
		Focus:   focusTarget(code),
	}
}

var errNilService = errors.New("preset service is not configured")
