package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown = "UNKNOWN"

	CodeObjectiveEmpty         = "OBJECTIVE_EMPTY"
	CodeObjectiveInvalidWeight = "OBJECTIVE_INVALID_WEIGHT"
	CodeObjectiveInvalidType   = "OBJECTIVE_INVALID_TYPE"
	CodeObjectiveWrongArity    = "OBJECTIVE_WRONG_ARITY"
	CodeObjectiveUnresolved    = "OBJECTIVE_UNRESOLVED"
	CodeObjectiveInvalidCount  = "OBJECTIVE_INVALID_COUNT"

	CodeCharAssignIdentityUnassigned = "CHAR_ASSIGN_IDENTITY_UNASSIGNED"
	CodeCharAssignModelUnused        = "CHAR_ASSIGN_MODEL_UNUSED"
	CodeCharAssignBadChoices         = "CHAR_ASSIGN_BAD_CHOICES"
	CodeCharAssignBadHexPack         = "CHAR_ASSIGN_BAD_HEX_PACK"

	CodeLogicBudgetExceeded = "LOGIC_BUDGET_EXCEEDED"

	CodeFlagRestricted = "FLAG_RESTRICTED"
	CodeUnknownFlag    = "UNKNOWN_FLAG"
	CodeUnknownMode    = "UNKNOWN_MODE"

	CodePresetInvalidJSON     = "PRESET_INVALID_JSON"
	CodePresetMissingSettings = "PRESET_MISSING_SETTINGS"
	CodePresetNameEmpty       = "PRESET_NAME_EMPTY"

	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

var enUSCatalog = NewCatalog(BaseLocale, map[Code]string{
	CodeUnknown: "An unexpected error occurred",

	// Objective errors
	CodeObjectiveEmpty:         "Objective cannot be empty",
	CodeObjectiveInvalidWeight: "Invalid weight {{.Weight}}: weights must be non-negative integers",
	CodeObjectiveInvalidType:   "Invalid objective type {{.Type}}",
	CodeObjectiveWrongArity:    "Objective {{.Objective}} has the wrong number of parts",
	CodeObjectiveUnresolved:    "Could not resolve {{.Kind}} {{.Value}}",
	CodeObjectiveInvalidCount:  "Invalid {{.Kind}} count {{.Value}}",

	// Character assignment errors
	CodeCharAssignIdentityUnassigned: "No models selected for: {{.Identities}}",
	CodeCharAssignModelUnused:        "No identities assigned to: {{.Models}}",
	CodeCharAssignBadChoices:         "Character choices are malformed",
	CodeCharAssignBadHexPack:         "Character assignment string is malformed",

	// Logic budget errors
	CodeLogicBudgetExceeded: "Selected flags add {{.KeyItems}} key items but only {{.Spots}} locations can hold them",

	// Flag constraint errors
	CodeFlagRestricted: "Flag {{.Flag}} is forced by the current mode or flags and cannot be changed",
	CodeUnknownFlag:    "Unknown flag {{.Flag}}",
	CodeUnknownMode:    "Unknown game mode {{.Mode}}",

	// Preset errors
	CodePresetInvalidJSON:     "Preset is not valid JSON",
	CodePresetMissingSettings: "Preset has no settings entry",
	CodePresetNameEmpty:       "Preset name cannot be empty",

	// Storage errors
	CodeNotFound:      "Not found",
	CodeAlreadyExists: "Already exists",
})

func init() {
	RegisterCatalog(BaseLocale, enUSCatalog)
}
