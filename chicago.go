package tablescrub

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tablescrub/tablescrub/domain/model"
)

// Column-specific patterns for the Chicago crime extracts.
var (
	// Case numbers start with two letters (e.g. HY123456).
	twoLetterPrefixRE = regexp.MustCompile(`^[A-Za-z]{2}`)
	// An anonymized address: a house number like 013XX followed by a
	// street location like W 3RD AVE. Used to validate and to extract.
	blockRE = regexp.MustCompile(`(?i)^(\d{1,4}x{1,4}) ((?:[a-z\d] ?){1,100})$`)
	// IUCR is some 4-length alphanumeric code.
	iucrRE = regexp.MustCompile(`(?i)^[a-z\d]{4}$`)
	// Up to five groups of letters and dashes.
	primaryTypeRE = regexp.MustCompile(`(?i)^(?:[a-z\-]{1,20}(?: |$)){1,5}$`)
	// Up to seven groups of letters, numbers, or [-/:,.()$}].
	descriptionRE = regexp.MustCompile(`(?i)^(?:[a-z\-/:,.()\d$}]{1,25}(?: |$)){1,7}$`)
	// Up to seven groups of letters or [-/.,()].
	locationDescriptionRE = regexp.MustCompile(`(?i)^(?:[a-z\-/.,()]{1,20}(?: |$)){1,7}$`)
	// A parenthesized (latitude, longitude) pair.
	locationRE = regexp.MustCompile(`^\((-?\d+\.\d+), ?(-?\d+\.\d+)\)$`)
	// Zip codes are exactly 4 or 5 digits, anchored so a 4-digit
	// prefix of a longer string cannot slip through.
	zipRE = regexp.MustCompile(`^(\d{5}|\d{4})$`)
)

// chicagoDateFormats lists the datetime layouts seen in the source
// extracts. Order by distribution when multiple formats occur; parsing
// is the hard-reject phase's bottleneck.
var chicagoDateFormats = []string{"01/02/2006 03:04:05 PM"}

// ChicagoKeepColumns lists the input columns the Chicago ruleset
// operates on, in extract order. Loaders can project chunks down to
// these before scrubbing.
func ChicagoKeepColumns() []string {
	return []string{
		"id", "case_number", "date", "block", "iucr", "primary_type",
		"description", "location_description", "arrest", "domestic",
		"beat", "district", "ward", "community_area", "location", "zip_codes",
	}
}

// ChicagoCrimeRuleset returns the default ruleset for Chicago crime
// record chunks.
//
// Mandatory fields: id must be all digits, case_number must start with
// two letters, date must parse with a known format; a validated date
// also derives year and month columns. Optional fields follow the
// published extract layout: the block field derives house_num and
// street_addr, the location field derives latitude and longitude and
// is dropped once decomposed, and 4-digit zip codes are left-padded to
// the canonical 5-digit form.
func ChicagoCrimeRuleset() Ruleset {
	tfValues := []string{"true", "false"}

	return Ruleset{
		Mandatory: []Field{
			{Name: "id", Rule: FieldRule{Validate: digitsOnly}},
			{Name: "case_number", Rule: FieldRule{Validate: twoLetterPrefixRE.MatchString}},
			{Name: "date", Rule: FieldRule{
				DateFormats: chicagoDateFormats,
				OtherNulls:  []string{"0000-00-00"},
				Generators:  []Generator{DateParts(chicagoDateFormats, "year", "month")},
			}},
		},
		Optional: []Field{
			{Name: "block", Rule: FieldRule{
				Pattern:    blockRE,
				Generators: []Generator{ExtractGroups(blockRE, "house_num", "street_addr")},
			}},
			{Name: "iucr", Rule: FieldRule{Pattern: iucrRE}},
			{Name: "primary_type", Rule: FieldRule{
				Pattern:     primaryTypeRE,
				PostProcess: []PostProcess{{Apply: TitleCase()}},
			}},
			{Name: "description", Rule: FieldRule{
				Validate:    matchWithin(descriptionRE, 50),
				PostProcess: []PostProcess{{Apply: TitleCase()}},
			}},
			{Name: "location_description", Rule: FieldRule{
				Validate:    matchWithin(locationDescriptionRE, 50),
				PostProcess: []PostProcess{{Apply: TitleCase()}},
			}},
			{Name: "arrest", Rule: FieldRule{ValidValues: tfValues}},
			{Name: "domestic", Rule: FieldRule{ValidValues: tfValues}},
			{Name: "beat", Rule: FieldRule{Validate: digitsOnly}},
			{Name: "district", Rule: FieldRule{Validate: digitsOnly}},
			{Name: "ward", Rule: FieldRule{Validate: digitsOnly}},
			{Name: "community_area", Rule: FieldRule{Validate: digitsOnly}},
			{Name: "location", Rule: FieldRule{
				Pattern:    locationRE,
				Generators: []Generator{ExtractGroups(locationRE, "latitude", "longitude")},
				DropField:  true,
			}},
			{Name: "zip_codes", Rule: FieldRule{
				Pattern:     zipRE,
				PostProcess: []PostProcess{{Apply: ZipToFive()}},
			}},
		},
	}
}

// digitsOnly reports whether v is a non-empty string of ASCII digits.
func digitsOnly(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// matchWithin combines a pattern with a maximum length, for fields
// whose regex alone does not bound the value size tightly enough.
func matchWithin(re *regexp.Regexp, maxLen int) Validator {
	return func(v string) bool {
		return len(v) <= maxLen && re.MatchString(v)
	}
}

// TitleCase returns a transform applying English title casing, the
// cosmetic normalization used for free-text crime fields.
func TitleCase() Transform {
	return func(values []model.Cell) []model.Cell {
		// cases.Caser is stateful, so build one per invocation to keep
		// the core free of shared mutable state.
		caser := cases.Title(language.English)
		out := make([]model.Cell, len(values))
		for i, c := range values {
			if c.IsNull() {
				out[i] = model.NullCell()
				continue
			}
			out[i] = model.NewCell(caser.String(c.Str))
		}
		return out
	}
}

// ZipToFive returns a transform producing the canonical 5-digit zip
// form: 4-digit values gain a leading zero, 5-digit values pass
// through, anything else becomes null.
func ZipToFive() Transform {
	return MapValues(func(v string) model.Cell {
		switch len(v) {
		case 4:
			return model.NewCell("0" + v)
		case 5:
			return model.NewCell(v)
		default:
			return model.NullCell()
		}
	})
}
