// Package tools defines the drug-label query operations exposed by the
// server. The seven tools share one execute pipeline (clamp limit, build
// query, fetch, extract) and are described by a static table rather than
// generated per-instance, so the registry is the single place a tool's
// name, description and upstream section key live.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/fdatools/openfda-mcp/metrics"
	"github.com/fdatools/openfda-mcp/openfda"
)

// Fetcher is the slice of the openFDA client the tools need.
type Fetcher interface {
	Fetch(ctx context.Context, query string, limit int) (*openfda.SearchResponse, error)
}

// ErrUnknownTool is returned when a call names a tool not in the registry.
var ErrUnknownTool = errors.New("unknown tool")

// Params are the filter arguments every tool accepts. Limit is a pointer
// so an omitted limit (default 3) is distinguishable from an explicit 0
// (clamped to 1).
type Params struct {
	DrugName     string `json:"drug_name"`
	Manufacturer string `json:"manufacturer"`
	DosageForm   string `json:"dosage_form"`
	Route        string `json:"route"`
	NDC          string `json:"ndc"`
	Limit        *int   `json:"limit"`
	ExactMatch   bool   `json:"exact_match"`
}

const (
	defaultLimit = 3
	minLimit     = 1
	maxLimit     = 10
)

// Tool describes one externally callable query operation.
type Tool struct {
	Name        string
	Description string
	// Section is the upstream label section the tool extracts.
	Section string
	// Structured marks the indications tool, which reshapes results into
	// DrugInfo records instead of returning the raw section strings.
	Structured bool
}

var registry = []Tool{
	{
		Name:        "get_drug_indications",
		Description: "Returns FDA-approved indications. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "indications_and_usage",
		Structured:  true,
	},
	{
		Name:        "get_drug_dosage",
		Description: "Returns FDA-approved dosage and administration instructions. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "dosage_and_administration",
	},
	{
		Name:        "get_specific_populations",
		Description: "Returns FDA 'Use in Specific Populations' info. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "use_in_specific_populations",
	},
	{
		Name:        "get_storage_handling",
		Description: "Returns FDA 'How Supplied/Storage and Handling' info. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "how_supplied_storage_and_handling",
	},
	{
		Name:        "get_warnings_precautions",
		Description: "Returns FDA 'Warnings and Precautions' info. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "warnings_and_precautions",
	},
	{
		Name:        "get_clinical_pharmacology",
		Description: "Returns FDA 'Clinical Pharmacology' info. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "clinical_pharmacology",
	},
	{
		Name:        "get_drug_description",
		Description: "Returns FDA-approved product description. Supports filtering by drug name, NDC, manufacturer, dosage form, and route.",
		Section:     "description",
	},
}

// All returns the registered tools in declaration order.
func All() []Tool {
	out := make([]Tool, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a tool by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Execute runs the named tool: build the query from the filters, fetch,
// and return either []string (simple tools) or []openfda.DrugInfo (the
// indications tool). Empty upstream results yield an empty list, never an
// error.
func Execute(ctx context.Context, client Fetcher, name string, p Params) (any, error) {
	tool, ok := Lookup(name)
	if !ok {
		metrics.ToolCallsTotal.WithLabelValues(name, "unknown").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	query := openfda.BuildSearchQuery(openfda.SearchFilters{
		DrugName:     p.DrugName,
		Manufacturer: p.Manufacturer,
		DosageForm:   p.DosageForm,
		Route:        p.Route,
		NDC:          p.NDC,
		ExactMatch:   p.ExactMatch,
	})

	resp, err := client.Fetch(ctx, query, clampLimit(p.Limit))
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues(name, "error").Inc()
		return nil, err
	}
	metrics.ToolCallsTotal.WithLabelValues(name, "ok").Inc()

	if tool.Structured {
		return reshapeDrugInfo(resp.Results), nil
	}
	return extractSection(resp.Results, tool.Section), nil
}

// clampLimit applies the default for an omitted limit and clamps explicit
// values into [1,10] before they reach the upstream request.
func clampLimit(limit *int) int {
	if limit == nil {
		return defaultLimit
	}
	if *limit < minLimit {
		return minLimit
	}
	if *limit > maxLimit {
		return maxLimit
	}
	return *limit
}

// extractSection concatenates the named label section across all results.
func extractSection(results []openfda.LabelResult, key string) []string {
	out := []string{}
	for _, rec := range results {
		out = append(out, rec.Section(key)...)
	}
	return out
}

// reshapeDrugInfo maps each label record to a structured DrugInfo,
// defaulting absent identity fields to empty lists.
func reshapeDrugInfo(results []openfda.LabelResult) []openfda.DrugInfo {
	out := []openfda.DrugInfo{}
	for _, rec := range results {
		id := rec.Identity()
		out = append(out, openfda.DrugInfo{
			BrandNames:   id.BrandNames,
			GenericNames: id.GenericNames,
			Manufacturer: id.Manufacturers,
			Indications:  rec.Section("indications_and_usage"),
			NDCCodes:     id.ProductNDCs,
		})
	}
	return out
}
