package openfda

import "strings"

// maxNDCForms caps how many candidate representations a single NDC input
// can expand to.
const maxNDCForms = 3

// NormalizeNDC expands a raw National Drug Code into up to three candidate
// representations, de-duplicated in first-seen order. openFDA stores
// product NDCs in inconsistent formats (hyphenated and bare digits), so
// searching every plausible form raises the match rate.
//
// Hyphenated inputs keep their original form first and gain a digit-only
// form when it has at least 9 digits. Bare inputs of exactly 10 or 11
// digits gain the canonical 5-4-1 or 5-4-2 hyphenation. Anything else
// contributes only the original string. Blank input means "no NDC filter"
// and yields no candidates.
func NormalizeNDC(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	forms := []string{raw}
	digits := stripNonDigits(raw)

	if strings.Contains(raw, "-") {
		if len(digits) >= 9 {
			forms = append(forms, digits)
		}
	} else if len(digits) == 10 || len(digits) == 11 {
		forms = append(forms, digits[:5]+"-"+digits[5:9]+"-"+digits[9:])
	}

	return dedupe(forms, maxNDCForms)
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// dedupe removes duplicates preserving first-seen order, keeping at most
// max entries.
func dedupe(in []string, max int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
