package match

import (
	"regexp"
	"strings"
)

// US broadcast callsigns start with K or W, run 3-5 letters total and may
// carry a service suffix (-TV, -CD, -LP, -DT, -LD).
const suffixPattern = `(?:-(?:TV|CD|LP|DT|LD))?`

var (
	subchannelPrefixRe = regexp.MustCompile(`^D\d+-`)
	callsignSuffixRe   = regexp.MustCompile(`-(?:TV|CD|LP|DT|LD)$`)
)

// recognizer is one extraction strategy. Strategies are tried in priority
// order; the first hit wins.
type recognizer interface {
	extract(name string) (string, bool)
}

// parenRecognizer matches a callsign enclosed in parentheses, e.g. "(KABC)".
type parenRecognizer struct {
	re *regexp.Regexp
}

func (r parenRecognizer) extract(name string) (string, bool) {
	if m := r.re.FindStringSubmatch(name); m != nil {
		return strings.ToUpper(m[1]), true
	}
	return "", false
}

// parenCityRecognizer matches a hyphen-joined callsign-plus-city form,
// e.g. "(WMTW-PORTLAND MAINE)", taking only the callsign segment.
type parenCityRecognizer struct {
	re *regexp.Regexp
}

func (r parenCityRecognizer) extract(name string) (string, bool) {
	if m := r.re.FindStringSubmatch(name); m != nil {
		return strings.ToUpper(m[1]), true
	}
	return "", false
}

// wordRecognizer matches a bare uppercase callsign in the token stream. The
// literal words WEST and EAST fit the shape but are regional feed markers,
// never station identifiers, so they are rejected here.
type wordRecognizer struct {
	re *regexp.Regexp
}

func (r wordRecognizer) extract(name string) (string, bool) {
	for _, m := range r.re.FindAllStringSubmatch(name, -1) {
		cs := strings.ToUpper(m[1])
		if isRegionalWord(cs) {
			continue
		}
		return cs, true
	}
	return "", false
}

func isRegionalWord(cs string) bool {
	return cs == "WEST" || cs == "EAST"
}

// Extraction order matters: delimited forms are unambiguous, end-of-name
// placement is the next strongest signal, a bare word anywhere is weakest.
var recognizers = []recognizer{
	parenRecognizer{re: regexp.MustCompile(`(?i)\(([KW][A-Z]{2,4}` + suffixPattern + `)\)`)},
	parenCityRecognizer{re: regexp.MustCompile(`\(([KW][A-Z]{2,4})-[A-Z][A-Z .]*\)`)},
	wordRecognizer{re: regexp.MustCompile(`\b([KW][A-Z]{2,4}` + suffixPattern + `)\s*(?:\.[a-z]+)?\s*$`)},
	wordRecognizer{re: regexp.MustCompile(`\b([KW][A-Z]{2,4}` + suffixPattern + `)\b`)},
}

// ExtractCallsign attempts to pull a broadcast callsign out of a free-text
// channel name. Absence is an expected outcome for non-broadcast names, never
// an error.
func ExtractCallsign(name string) (string, bool) {
	name = subchannelPrefixRe.ReplaceAllString(strings.TrimSpace(name), "")
	for _, r := range recognizers {
		if cs, ok := r.extract(name); ok {
			if isRegionalWord(cs) {
				continue
			}
			return cs, true
		}
	}
	return "", false
}

// BaseCallsign strips the service suffix for display and directory fallback,
// e.g. "WABC-TV" -> "WABC".
func BaseCallsign(cs string) string {
	return callsignSuffixRe.ReplaceAllString(cs, "")
}
