package openfda

import "strings"

// SearchFilters are the caller-supplied constraints for a label search.
// Zero values mean "no filter on this field".
type SearchFilters struct {
	DrugName     string
	Manufacturer string
	DosageForm   string
	Route        string
	NDC          string
	ExactMatch   bool
}

// matchAll is the openFDA wildcard query returned when no filter is set.
const matchAll = "*:*"

// drugNameFields are the identity fields a drug-name filter matches
// against, OR-joined.
var drugNameFields = []string{
	"openfda.brand_name",
	"openfda.generic_name",
	"openfda.substance_name",
}

// BuildSearchQuery composes the filters into a single openFDA boolean
// query string. NDC filters take priority: when the NDC normalizes to at
// least one candidate, the query is an OR-group over the candidates,
// AND-joined with whatever other filters are present. An NDC that yields
// no candidates is ignored entirely. With no filters at all the wildcard
// query is returned.
//
// Filter values are inserted as literal quoted strings. They are not
// escaped against the openFDA query grammar, so values containing its
// control characters produce unpredictable queries.
func BuildSearchQuery(f SearchFilters) string {
	extra := filterClauses(f)

	if f.NDC != "" {
		if candidates := NormalizeNDC(f.NDC); len(candidates) > 0 {
			ndcClauses := make([]string, len(candidates))
			for i, c := range candidates {
				ndcClauses[i] = clause("openfda.product_ndc", c)
			}
			ndcGroup := "(" + strings.Join(ndcClauses, " OR ") + ")"

			if f.DrugName == "" && len(extra) == 0 {
				return ndcGroup
			}

			parts := []string{ndcGroup}
			if f.DrugName != "" {
				parts = append(parts, drugNameGroup(f.DrugName, f.ExactMatch))
			}
			parts = append(parts, extra...)
			return strings.Join(parts, " AND ")
		}
	}

	var parts []string
	if f.DrugName != "" {
		parts = append(parts, drugNameGroup(f.DrugName, f.ExactMatch))
	}
	parts = append(parts, extra...)

	if len(parts) == 0 {
		return matchAll
	}
	return strings.Join(parts, " AND ")
}

// drugNameGroup builds the OR-group matching a drug name against brand,
// generic and substance names. The exact/substring choice is applied per
// field via the .exact suffix.
func drugNameGroup(name string, exact bool) string {
	parts := make([]string, len(drugNameFields))
	for i, field := range drugNameFields {
		if exact {
			field += ".exact"
		}
		parts[i] = clause(field, name)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// filterClauses returns the manufacturer, dosage-form and route clauses
// for whichever of those filters are present. Absent filters are omitted,
// never emitted as empty clauses.
func filterClauses(f SearchFilters) []string {
	var clauses []string
	if f.Manufacturer != "" {
		clauses = append(clauses, clause("openfda.manufacturer_name", f.Manufacturer))
	}
	if f.DosageForm != "" {
		clauses = append(clauses, clause("openfda.dosage_form", f.DosageForm))
	}
	if f.Route != "" {
		clauses = append(clauses, clause("openfda.route", f.Route))
	}
	return clauses
}

func clause(field, value string) string {
	return field + `:"` + value + `"`
}
