package domain

import (
	"regexp"
	"strings"
)

// IndicatorClass is the classifier's output. The zero value is Invalid.
type IndicatorClass int

const (
	ClassInvalid IndicatorClass = iota
	ClassHash
	ClassIPv4
)

func (c IndicatorClass) String() string {
	switch c {
	case ClassHash:
		return "hash"
	case ClassIPv4:
		return "ipv4"
	default:
		return "invalid"
	}
}

// Type maps a valid class to the verdict type tag.
func (c IndicatorClass) Type() (IndicatorType, bool) {
	switch c {
	case ClassHash:
		return TypeHash, true
	case ClassIPv4:
		return TypeIP, true
	}
	return "", false
}

var (
	// MD5, SHA-1 and SHA-256 lengths.
	hashRe = regexp.MustCompile(`^(?:[a-fA-F0-9]{32}|[a-fA-F0-9]{40}|[a-fA-F0-9]{64})$`)
	ipv4Re = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
)

// Classify maps raw text to exactly one class. Surrounding whitespace is
// ignored.
func Classify(raw string) IndicatorClass {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return ClassInvalid
	case hashRe.MatchString(s):
		return ClassHash
	case ipv4Re.MatchString(s):
		return ClassIPv4
	default:
		return ClassInvalid
	}
}

// SplitIndicators splits free text on newlines and commas, trims every
// segment and drops the empty ones.
func SplitIndicators(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ',' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validation is the result of the submission-side validation pass.
type Validation struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

// Validate splits text with SplitIndicators and classifies each segment.
func Validate(text string) Validation {
	return Partition(SplitIndicators(text))
}

// Partition classifies already-split entries, keeping their order. Entries
// are trimmed; an entry that is empty after trimming is invalid.
func Partition(entries []string) Validation {
	v := Validation{Valid: []string{}, Invalid: []string{}}
	for _, e := range entries {
		if Classify(e) == ClassInvalid {
			v.Invalid = append(v.Invalid, e)
			continue
		}
		v.Valid = append(v.Valid, strings.TrimSpace(e))
	}
	return v
}
