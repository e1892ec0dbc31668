package leads

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phoneStrip   = regexp.MustCompile(`[^0-9+]`)
)

// ValidCountries maps accepted country codes to display names.
var ValidCountries = map[string]string{
	"US":    "United States",
	"CA":    "Canada",
	"GB":    "United Kingdom",
	"DE":    "Germany",
	"FR":    "France",
	"AU":    "Australia",
	"SG":    "Singapore",
	"HK":    "Hong Kong",
	"JP":    "Japan",
	"ZA":    "South Africa",
	"Other": "Other",
}

// ValidInvestmentRanges is the closed set accepted for investment_range.
var ValidInvestmentRanges = map[string]struct{}{
	"under_50k": {},
	"50k_100k":  {},
	"100k_500k": {},
	"500k_1m":   {},
	"over_1m":   {},
}

// ValidSources is the closed set accepted for how_heard.
var ValidSources = map[string]struct{}{
	"search_engine": {},
	"social_media":  {},
	"referral":      {},
	"news_article":  {},
	"event":         {},
	"other":         {},
}

const maxInterestsLen = 1000

// CleanText collapses internal whitespace runs to single spaces and trims the
// ends. Empty input comes back unchanged, and the transform is idempotent.
func CleanText(s string) string {
	if s == "" {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}

// titleCase upper-cases the first letter of every word, where a word starts
// after any non-letter (spaces, hyphens, apostrophes).
func titleCase(s string) string {
	out := []rune(strings.ToLower(s))
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) && !prevLetter {
			out[i] = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return string(out)
}

func validateName(label string) func(string) (string, error) {
	return func(raw string) (string, error) {
		if raw == "" {
			return "", fmt.Errorf("%s is required", label)
		}
		name := CleanText(raw)
		if len(name) < 2 {
			return "", fmt.Errorf("%s must be at least 2 characters long", label)
		}
		if !namePattern.MatchString(name) {
			return "", fmt.Errorf("%s can only contain letters, spaces, hyphens, and apostrophes", label)
		}
		return titleCase(name), nil
	}
}

func validateEmail(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("Email is required")
	}
	email := strings.ToLower(CleanText(raw))
	if !emailPattern.MatchString(email) {
		return "", errors.New("Please enter a valid email address")
	}
	return email, nil
}

func validatePhone(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("Phone number is required")
	}
	cleaned := phoneStrip.ReplaceAllString(raw, "")
	digits := strings.ReplaceAll(cleaned, "+", "")
	if len(digits) < 7 || len(digits) > 15 {
		return "", errors.New("Please enter a valid phone number (7-15 digits)")
	}
	return cleaned, nil
}

func validateCountry(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("Country selection is required")
	}
	if _, ok := ValidCountries[raw]; !ok {
		return "", errors.New("Please select a valid country")
	}
	return raw, nil
}

// requiredRule validates one required field. A failure lands in the error map
// under the field name; the other rules still run so all errors surface at once.
type requiredRule struct {
	field    string
	value    func(*Submission) string
	validate func(string) (string, error)
	assign   func(*Lead, string)
}

// optionalRule normalizes one optional field. Values that fail the rule are
// silently dropped rather than reported.
type optionalRule struct {
	field     string
	value     func(*Submission) string
	normalize func(string) (string, bool)
	assign    func(*Lead, string)
}

var requiredRules = []requiredRule{
	{
		field:    "first_name",
		value:    func(s *Submission) string { return s.FirstName },
		validate: validateName("First name"),
		assign:   func(l *Lead, v string) { l.FirstName = v },
	},
	{
		field:    "last_name",
		value:    func(s *Submission) string { return s.LastName },
		validate: validateName("Last name"),
		assign:   func(l *Lead, v string) { l.LastName = v },
	},
	{
		field:    "email",
		value:    func(s *Submission) string { return s.Email },
		validate: validateEmail,
		assign:   func(l *Lead, v string) { l.Email = v },
	},
	{
		field:    "phone",
		value:    func(s *Submission) string { return s.Phone },
		validate: validatePhone,
		assign:   func(l *Lead, v string) { l.Phone = v },
	},
	{
		field:    "country",
		value:    func(s *Submission) string { return s.Country },
		validate: validateCountry,
		assign:   func(l *Lead, v string) { l.Country = v },
	},
}

var optionalRules = []optionalRule{
	{
		field:     "company",
		value:     func(s *Submission) string { return s.Company },
		normalize: func(v string) (string, bool) { return CleanText(v), true },
		assign:    func(l *Lead, v string) { l.Company = v },
	},
	{
		field:     "job_title",
		value:     func(s *Submission) string { return s.JobTitle },
		normalize: func(v string) (string, bool) { return CleanText(v), true },
		assign:    func(l *Lead, v string) { l.JobTitle = v },
	},
	{
		field: "investment_range",
		value: func(s *Submission) string { return s.InvestmentRange },
		normalize: func(v string) (string, bool) {
			_, ok := ValidInvestmentRanges[v]
			return v, ok
		},
		assign: func(l *Lead, v string) { l.InvestmentRange = v },
	},
	{
		field: "interests",
		value: func(s *Submission) string { return s.Interests },
		normalize: func(v string) (string, bool) {
			cleaned := CleanText(v)
			return cleaned, len(cleaned) <= maxInterestsLen
		},
		assign: func(l *Lead, v string) { l.Interests = v },
	},
	{
		field: "how_heard",
		value: func(s *Submission) string { return s.HowHeard },
		normalize: func(v string) (string, bool) {
			_, ok := ValidSources[v]
			return v, ok
		},
		assign: func(l *Lead, v string) { l.HowHeard = v },
	},
}

// Validate runs every field rule against the submission. It returns the
// normalized lead when all required fields pass, or a field→reason map when
// any of them fail. Optional fields never produce errors.
func Validate(sub *Submission) (*Lead, map[string]string) {
	lead := &Lead{}
	errs := make(map[string]string)

	for _, rule := range requiredRules {
		normalized, err := rule.validate(rule.value(sub))
		if err != nil {
			errs[rule.field] = err.Error()
			continue
		}
		rule.assign(lead, normalized)
	}

	for _, rule := range optionalRules {
		raw := rule.value(sub)
		if raw == "" {
			continue
		}
		if v, ok := rule.normalize(raw); ok {
			rule.assign(lead, v)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	lead.IsValidated = true
	return lead, nil
}
