package meevo

import (
	"strings"

	"backbar/models"

	"github.com/google/uuid"
)

// LooksLikeID reports whether the input is already an opaque upstream
// identifier rather than a spoken name. Meevo ids are UUIDs; the
// length-and-hyphen fallback covers the odd non-UUID opaque id the upstream
// has been seen to hand out.
func LooksLikeID(input string) bool {
	if _, err := uuid.Parse(input); err == nil {
		return true
	}
	return strings.Contains(input, "-") && len(input) > 30
}

// ServiceTable maps spoken service names and aliases to upstream service ids.
// Keys are case-normalized once at construction.
type ServiceTable struct {
	byAlias map[string]string
}

// NewServiceTable builds the lookup table from the configured alias map.
func NewServiceTable(aliases map[string]string) *ServiceTable {
	table := &ServiceTable{byAlias: make(map[string]string, len(aliases))}
	for alias, id := range aliases {
		table.byAlias[strings.ToLower(strings.TrimSpace(alias))] = id
	}
	return table
}

// Resolve maps a service identifier to its upstream id. Fallback order:
// opaque ids pass straight through, then the alias table is consulted.
// Returns "" when the input resolves to nothing.
func (t *ServiceTable) Resolve(input string) string {
	if input == "" {
		return ""
	}
	if LooksLikeID(input) {
		return input
	}
	return t.byAlias[strings.ToLower(strings.TrimSpace(input))]
}

// ResolveStylist maps a stylist identifier to an employee id using the active
// roster. Same fallback order as service resolution: opaque id first, then a
// case-insensitive name match.
func ResolveStylist(input string, roster *models.Roster) string {
	if input == "" || roster == nil {
		return ""
	}
	if LooksLikeID(input) {
		return input
	}
	want := strings.ToLower(strings.TrimSpace(input))
	for _, emp := range roster.Employees {
		if strings.ToLower(emp.Name) == want || strings.ToLower(emp.Nickname) == want {
			return emp.ID
		}
	}
	return ""
}

// DisplayServiceName turns a requested service identifier into the
// lower-cased, space-separated form used in responses.
func DisplayServiceName(input string) string {
	return strings.ReplaceAll(strings.ToLower(input), "_", " ")
}
