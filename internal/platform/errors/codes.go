// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Objective errors
	CodeObjectiveEmpty         Code = "OBJECTIVE_EMPTY"
	CodeObjectiveInvalidWeight Code = "OBJECTIVE_INVALID_WEIGHT"
	CodeObjectiveInvalidType   Code = "OBJECTIVE_INVALID_TYPE"
	CodeObjectiveWrongArity    Code = "OBJECTIVE_WRONG_ARITY"
	CodeObjectiveUnresolved    Code = "OBJECTIVE_UNRESOLVED"
	CodeObjectiveInvalidCount  Code = "OBJECTIVE_INVALID_COUNT"

	// Character assignment errors
	CodeCharAssignIdentityUnassigned Code = "CHAR_ASSIGN_IDENTITY_UNASSIGNED"
	CodeCharAssignModelUnused        Code = "CHAR_ASSIGN_MODEL_UNUSED"
	CodeCharAssignBadChoices         Code = "CHAR_ASSIGN_BAD_CHOICES"
	CodeCharAssignBadHexPack         Code = "CHAR_ASSIGN_BAD_HEX_PACK"

	// Logic budget errors
	CodeLogicBudgetExceeded Code = "LOGIC_BUDGET_EXCEEDED"

	// Flag constraint errors
	CodeFlagRestricted Code = "FLAG_RESTRICTED"
	CodeUnknownFlag    Code = "UNKNOWN_FLAG"
	CodeUnknownMode    Code = "UNKNOWN_MODE"

	// Preset errors
	CodePresetInvalidJSON     Code = "PRESET_INVALID_JSON"
	CodePresetMissingSettings Code = "PRESET_MISSING_SETTINGS"
	CodePresetNameEmpty       Code = "PRESET_NAME_EMPTY"

	// Storage errors
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - malformed input
	case CodePresetInvalidJSON,
		CodePresetMissingSettings,
		CodePresetNameEmpty,
		CodeUnknownFlag,
		CodeUnknownMode:
		return http.StatusBadRequest

	// Unprocessable entity - well-formed input failing validation
	case CodeObjectiveEmpty,
		CodeObjectiveInvalidWeight,
		CodeObjectiveInvalidType,
		CodeObjectiveWrongArity,
		CodeObjectiveUnresolved,
		CodeObjectiveInvalidCount,
		CodeCharAssignIdentityUnassigned,
		CodeCharAssignModelUnused,
		CodeCharAssignBadChoices,
		CodeCharAssignBadHexPack,
		CodeLogicBudgetExceeded,
		CodeFlagRestricted:
		return http.StatusUnprocessableEntity

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	// Conflict - unique resource constraint
	case CodeAlreadyExists:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
