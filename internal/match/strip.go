package match

import (
	"regexp"
	"strings"
)

// StripConfig controls noise removal before matching.
type StripConfig struct {
	// IgnoredTags are removed entirely when they appear inside (...) or [...]
	// delimiters. Matching is case-insensitive.
	IgnoredTags []string
}

// StripResult carries the comparison string together with the tags extracted
// for later reattachment, each list in original order of appearance.
type StripResult struct {
	Comparison  string   // noise-free form used for premium matching
	Regional    string   // "East" or "West", empty if none
	ExtraTags   []string // preserved parenthesized tags, e.g. "(CX)"
	QualityTags []string // preserved bracketed tags, e.g. "[HD]"
}

var (
	bracketRe  = regexp.MustCompile(`\[([^\]]*)\]`)
	parenRe    = regexp.MustCompile(`\(([^)]*)\)`)
	spaceRe    = regexp.MustCompile(`\s+`)
	usaRe      = regexp.MustCompile(`(?i)\bUSA\b`)
	usaNetRe   = regexp.MustCompile(`(?i)\bUSA\s+Network\b`)
	eastWestRe = regexp.MustCompile(`(?i)\b(east|west)\b`)

	// Bare trailing quality markers are noise for comparison purposes but are
	// not preserved: only delimited tags survive for display.
	bareQualityRe = regexp.MustCompile(`(?i)\s+(hd|fhd|uhd|sd|4k|slow|dead|unknown|unk)\s*$`)

	// A regional word directly after a 4-letter uppercase token is callsign
	// territory (e.g. "KTLA WEST" feeds), not a feed-region marker.
	callsignRegionRe = regexp.MustCompile(`\b[A-Z]{4}\s+(?i:East|West)\b`)
)

// Strip removes configured and structural noise from a raw channel name and
// extracts the tags that must survive renaming. Purely functional: same input
// and config always produce the same result.
func Strip(name string, cfg StripConfig) StripResult {
	ignored := make(map[string]struct{}, len(cfg.IgnoredTags))
	for _, t := range cfg.IgnoredTags {
		ignored[strings.ToLower(strings.Trim(strings.TrimSpace(t), "[]()"))] = struct{}{}
	}

	res := StripResult{}

	// Bracketed tags: all removed from the comparison string, all preserved
	// for display. Ignored-tag membership does not suppress display here; the
	// ignored set matters for matching, which drops brackets regardless.
	for _, m := range bracketRe.FindAllStringSubmatch(name, -1) {
		tag := strings.TrimSpace(m[1])
		if tag == "" {
			continue
		}
		res.QualityTags = append(res.QualityTags, "["+tag+"]")
	}

	// Parenthesized tags: regional markers go to Regional, ignored tags are
	// dropped, everything else is preserved as an extra tag.
	for _, m := range parenRe.FindAllStringSubmatch(name, -1) {
		tag := strings.TrimSpace(m[1])
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		if lower == "east" || lower == "west" {
			if res.Regional == "" {
				res.Regional = capitalize(lower)
			}
			continue
		}
		if _, skip := ignored[lower]; skip {
			continue
		}
		res.ExtraTags = append(res.ExtraTags, "("+tag+")")
	}

	// Bare East/West outside parentheses also counts as a regional marker,
	// unless it trails a callsign-shaped token.
	if res.Regional == "" && !callsignRegionRe.MatchString(name) {
		stripped := bracketRe.ReplaceAllString(name, " ")
		stripped = parenRe.ReplaceAllString(stripped, " ")
		if m := eastWestRe.FindString(stripped); m != "" {
			res.Regional = capitalize(strings.ToLower(m))
		}
	}

	res.Comparison = comparisonString(name)
	return res
}

// comparisonString reduces a raw name to the form compared against premium
// normalized keys: no delimited tags, no regional words, no bare quality
// suffix, USA dropped unless the channel is USA Network itself.
func comparisonString(name string) string {
	s := bracketRe.ReplaceAllString(name, " ")
	s = parenRe.ReplaceAllString(s, " ")
	if !usaNetRe.MatchString(name) {
		s = usaRe.ReplaceAllString(s, " ")
	}
	s = eastWestRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	for {
		trimmed := bareQualityRe.ReplaceAllString(s, "")
		if trimmed == s {
			break
		}
		s = trimmed
	}
	return strings.TrimSpace(s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
