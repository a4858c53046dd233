package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TagPosition names one slot in the premium tag-reattachment order.
type TagPosition string

const (
	TagRegional TagPosition = "regional"
	TagQuality  TagPosition = "quality"
	TagExtra    TagPosition = "extra"
)

// DefaultTagOrder places the regional indicator right after the canonical
// name, then quality tags, then anything else. The order is a policy point:
// operators can reconfigure it.
var DefaultTagOrder = []TagPosition{TagRegional, TagQuality, TagExtra}

// DefaultTemplate renders broadcast names as "ABC - NY New York (WABC)".
const DefaultTemplate = "{NETWORK} - {STATE} {CITY} ({CALLSIGN})"

var (
	placeholderRe = regexp.MustCompile(`\{(\w+)\}`)
	titleCaser    = cases.Title(language.AmericanEnglish)

	networkChannelRe = regexp.MustCompile(`^(.*?)\s+(?:CH\s+)?\d+(?:\.\d+)?(?:/.*)?$`)
	networkLeadNumRe = regexp.MustCompile(`^\d+\.?\d*\s+`)
	networkSuffixRe  = regexp.MustCompile(`(?i)\s+(?:Television\s+)?Network\s*$`)
	networkPrefixRe  = regexp.MustCompile(`^[KW][A-Z]{3,4}(?:-(?:TV|CD|LP|DT|LD))?\s+D\d+\s*-\s*`)
)

// KnownPlaceholders lists the template fields the broadcast formatter can
// resolve. Configuration validation rejects anything else at load time.
var KnownPlaceholders = map[string]struct{}{
	"NETWORK":  {},
	"STATE":    {},
	"CITY":     {},
	"CALLSIGN": {},
}

// TemplatePlaceholders returns the placeholder names used in a template.
func TemplatePlaceholders(template string) []string {
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		names = append(names, m[1])
	}
	return names
}

// Formatter renders final channel names for both match sources.
type Formatter struct {
	Template string        // broadcast template with {NETWORK} etc.
	TagOrder []TagPosition // premium tag reattachment order
}

// FormatBroadcast substitutes station fields into the template. A missing
// field renders as an empty string, never as a literal placeholder.
func (f Formatter) FormatBroadcast(st StationRecord, callsign string) string {
	values := map[string]string{
		"NETWORK":  ParseNetworkAffiliation(st.NetworkAffiliation),
		"CITY":     titleCaser.String(strings.ToLower(strings.TrimSpace(st.City))),
		"STATE":    strings.ToUpper(strings.TrimSpace(st.State)),
		"CALLSIGN": BaseCallsign(strings.ToUpper(callsign)),
	}

	template := f.Template
	if template == "" {
		template = DefaultTemplate
	}
	out := placeholderRe.ReplaceAllStringFunc(template, func(ph string) string {
		name := ph[1 : len(ph)-1]
		return values[name]
	})
	return strings.TrimSpace(spaceRe.ReplaceAllString(out, " "))
}

// FormatPremium reattaches the preserved tags to a matched canonical name in
// the configured order.
func (f Formatter) FormatPremium(canonical string, tags StripResult) string {
	parts := []string{canonical}
	order := f.TagOrder
	if len(order) == 0 {
		order = DefaultTagOrder
	}
	for _, pos := range order {
		switch pos {
		case TagRegional:
			if tags.Regional != "" {
				parts = append(parts, "("+tags.Regional+")")
			}
		case TagQuality:
			parts = append(parts, tags.QualityTags...)
		case TagExtra:
			parts = append(parts, tags.ExtraTags...)
		}
	}
	return strings.Join(parts, " ")
}

// ParseNetworkAffiliation extracts the primary network from a raw affiliation
// string. Station datasets pack subchannel noise into this field
// ("WXYZ D2 - ABC CH 7.2"); only the leading network name survives.
func ParseNetworkAffiliation(affiliation string) string {
	s := strings.TrimSpace(affiliation)
	if s == "" {
		return ""
	}

	s = subchannelPrefixRe.ReplaceAllString(s, "")
	s = networkPrefixRe.ReplaceAllString(s, "")
	s = networkChannelRe.ReplaceAllString(s, "$1")
	s = networkLeadNumRe.ReplaceAllString(s, "")

	// First network before any separator.
	if i := strings.IndexAny(s, ";/,("); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	s = networkSuffixRe.ReplaceAllString(s, "")

	return strings.ToUpper(strings.TrimSpace(s))
}
