package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Element render not implemented",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Render depth exceeded",
	},
	"E003": {
		Category: CategoryAdapter,
		Message:  "Response adapter failed",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid muon.json",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "muon.json not found",
	},

	// ============================================
	// Serving and Publishing Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryHTTP,
		Message:  "Unknown page",
	},
	"E161": {
		Category: CategoryPublish,
		Message:  "Publish failed",
	},

	// ============================================
	// Registry Errors (E180-E199)
	// ============================================

	"E180": {
		Category: CategoryRegistry,
		Message:  "Unknown tag",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
