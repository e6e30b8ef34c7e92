package store

// englishDescriptions maps environment-variable tokens to their English
// display descriptions.
var englishDescriptions = CatalogLocalizer{
	"current_date":       "Current date",
	"completed_date":     "Completed date",
	"due_date":           "Due date",
	"event_count":        "Event count",
	"event_date":         "Event date",
	"event_id":           "Event id",
	"event_status":       "Event status",
	"enrollment_count":   "Enrollment count",
	"enrollment_date":    "Enrollment date",
	"enrollment_id":      "Enrollment id",
	"enrollment_status":  "Enrollment status",
	"environment":        "Environment",
	"incident_date":      "Incident date",
	"org_unit":           "Organisation unit",
	"org_unit_code":      "Organisation unit code",
	"program_name":       "Program name",
	"program_stage_id":   "Program stage id",
	"program_stage_name": "Program stage name",
	"tei_count":          "Tracked entity count",
}

var catalogs = map[string]CatalogLocalizer{
	"en": englishDescriptions,
}

// DescriptionsFor returns the token catalog for a locale. Unknown locales
// get an empty catalog, which falls back to the tokens themselves.
func DescriptionsFor(locale string) CatalogLocalizer {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return CatalogLocalizer{}
}
