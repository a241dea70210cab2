// Package naming derives source-level identifiers from the raw names found
// in a discovery document: API names, version strings and service names.
//
// All functions are pure and safe for concurrent use.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// separator is the placeholder that non-alphanumeric runes are replaced
// with before camel-casing. Camelize consumes it as a word boundary.
const separator = '_'

// serviceSuffix is appended to the service identifier.
const serviceSuffix = "Service"

// Camelize upper-cases the first letter of every word and drops the
// underscores between words, leaving the rest of each word untouched:
//
//	"drive"           -> "Drive"
//	"youtubeAnalytics" -> "YoutubeAnalytics"
//	"admin_directory" -> "AdminDirectory"
//
// Non-ASCII letters are case-mapped but never transliterated.
func Camelize(s string) string {
	if s == "" {
		return ""
	}
	// Casers carry state and must not be shared between goroutines.
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	b.Grow(len(s))
	for _, word := range strings.Split(s, string(separator)) {
		b.WriteString(title.String(word))
	}
	return b.String()
}

// VersionIdentifier turns an API version such as "v1.2" or "v1beta" into an
// identifier suffix ("V12", "V1beta"). Every non-alphanumeric rune becomes a
// word boundary and is removed from the result.
//
// A leading digit is not corrected; that is left to the emitter.
func VersionIdentifier(raw string) string {
	replaced := strings.Map(func(r rune) rune {
		if isAlnum(r) {
			return r
		}
		return separator
	}, raw)
	return strings.ReplaceAll(Camelize(replaced), string(separator), "")
}

// APIIdentifier camel-cases an API name. No characters are stripped.
func APIIdentifier(raw string) string {
	return Camelize(raw)
}

// ModuleIdentifier joins the API and version identifiers with no separator.
// Two versions of the same API always yield different module identifiers
// as long as their version strings differ in some alphanumeric rune.
func ModuleIdentifier(apiName, version string) string {
	return APIIdentifier(apiName) + VersionIdentifier(version)
}

// ServiceIdentifier returns the service class name for an API. Callers pass
// the API's canonical name when it has one, its plain name otherwise.
// Punctuation is removed before the "Service" suffix is appended:
//
//	"My-API!" -> "MyAPIService"
func ServiceIdentifier(canonicalOrName string) string {
	return Camelize(StripNonAlnum(canonicalOrName) + serviceSuffix)
}

// StripNonAlnum removes every rune that is neither a letter nor a digit.
func StripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if isAlnum(r) {
			return r
		}
		return -1
	}, s)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
