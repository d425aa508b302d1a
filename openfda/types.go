// Package openfda implements query construction and the HTTP client for
// the openFDA drug-label search API. It knows nothing about how the
// queries are exposed to callers; see the tools and mcp packages for that.
package openfda

import "encoding/json"

// LabelResult is one drug-label record as returned by openFDA: a mapping
// of label section names (indications_and_usage, dosage_and_administration,
// ...) to lists of free-text strings, plus an "openfda" identity sub-object.
// Sections are kept raw because each tool only ever reads a single one.
type LabelResult map[string]json.RawMessage

// Section returns the named label section as a list of strings. Absent or
// malformed sections come back as an empty list; openFDA omits sections a
// label does not carry, and callers treat both cases the same.
func (r LabelResult) Section(key string) []string {
	raw, ok := r[key]
	if !ok {
		return []string{}
	}
	var section []string
	if err := json.Unmarshal(raw, &section); err != nil {
		return []string{}
	}
	return section
}

// Identity returns the record's openfda identity sub-object with every
// absent field defaulted to an empty list.
func (r LabelResult) Identity() Identity {
	var id Identity
	if raw, ok := r["openfda"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	id.BrandNames = orEmpty(id.BrandNames)
	id.GenericNames = orEmpty(id.GenericNames)
	id.Manufacturers = orEmpty(id.Manufacturers)
	id.SubstanceNames = orEmpty(id.SubstanceNames)
	id.ProductNDCs = orEmpty(id.ProductNDCs)
	return id
}

// Identity holds the identifying fields of the openfda sub-object.
type Identity struct {
	BrandNames     []string `json:"brand_name"`
	GenericNames   []string `json:"generic_name"`
	Manufacturers  []string `json:"manufacturer_name"`
	SubstanceNames []string `json:"substance_name"`
	ProductNDCs    []string `json:"product_ndc"`
}

// SearchResponse is the envelope openFDA wraps search results in.
type SearchResponse struct {
	Results []LabelResult `json:"results"`
}

// DrugInfo is the structured record returned by get_drug_indications.
// Every field defaults to an empty list when the upstream label omits it.
type DrugInfo struct {
	BrandNames   []string `json:"brand_names"`
	GenericNames []string `json:"generic_names"`
	Manufacturer []string `json:"manufacturer"`
	Indications  []string `json:"indications"`
	NDCCodes     []string `json:"ndc_codes"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
