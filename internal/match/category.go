package match

// Content categories used by the grouping workflow. Classification never
// feeds back into renaming.
const (
	CategoryBroadcast     = "Broadcast"
	CategoryPremiumMovies = "Premium Movies"
	CategorySports        = "Sports"
	CategoryNews          = "News"
	CategoryEntertainment = "Entertainment"
	CategoryKids          = "Kids"
	CategoryDocumentary   = "Documentary"
	CategoryMusic         = "Music"
)

// categoryTable maps normalized channel or network keys to a content
// category. Curated, not exhaustive: an absent entry is a normal outcome.
var categoryTable = map[string]string{
	// Broadcast networks (matched via station affiliation)
	"abc":         CategoryBroadcast,
	"nbc":         CategoryBroadcast,
	"cbs":         CategoryBroadcast,
	"fox":         CategoryBroadcast,
	"cw":          CategoryBroadcast,
	"thecw":       CategoryBroadcast,
	"pbs":         CategoryBroadcast,
	"ion":         CategoryBroadcast,
	"mynetworktv": CategoryBroadcast,
	"telemundo":   CategoryBroadcast,
	"univision":   CategoryBroadcast,

	// Premium movie tiers
	"hbo":          CategoryPremiumMovies,
	"hbo2":         CategoryPremiumMovies,
	"hbofamily":    CategoryPremiumMovies,
	"hbosignature": CategoryPremiumMovies,
	"cinemax":      CategoryPremiumMovies,
	"5starmax":     CategoryPremiumMovies,
	"moremax":      CategoryPremiumMovies,
	"actionmax":    CategoryPremiumMovies,
	"moviemax":     CategoryPremiumMovies,
	"thrillermax":  CategoryPremiumMovies,
	"showtime":     CategoryPremiumMovies,
	"showtime2":    CategoryPremiumMovies,
	"starz":        CategoryPremiumMovies,
	"starzencore":  CategoryPremiumMovies,
	"tmc":          CategoryPremiumMovies,
	"mgmplus":      CategoryPremiumMovies,

	// Sports
	"espn":          CategorySports,
	"espn2":         CategorySports,
	"espnu":         CategorySports,
	"fs1":           CategorySports,
	"fs2":           CategorySports,
	"nflnetwork":    CategorySports,
	"nbatv":         CategorySports,
	"mlbnetwork":    CategorySports,
	"nhlnetwork":    CategorySports,
	"golfchannel":   CategorySports,
	"tennischannel": CategorySports,

	// News
	"cnn":            CategoryNews,
	"foxnews":        CategoryNews,
	"msnbc":          CategoryNews,
	"cnbc":           CategoryNews,
	"newsnation":     CategoryNews,
	"bbcnews":        CategoryNews,
	"weatherchannel": CategoryNews,

	// Entertainment
	"usanetwork":       CategoryEntertainment,
	"tnt":              CategoryEntertainment,
	"tbs":              CategoryEntertainment,
	"fx":               CategoryEntertainment,
	"fxx":              CategoryEntertainment,
	"amc":              CategoryEntertainment,
	"bravo":            CategoryEntertainment,
	"ae":               CategoryEntertainment,
	"paramountnetwork": CategoryEntertainment,
	"syfy":             CategoryEntertainment,
	"comedycentral":    CategoryEntertainment,
	"tvland":           CategoryEntertainment,
	"hallmarkchannel":  CategoryEntertainment,

	// Kids
	"cartoonnetwork": CategoryKids,
	"nickelodeon":    CategoryKids,
	"nickjr":         CategoryKids,
	"disneychannel":  CategoryKids,
	"disneyjunior":   CategoryKids,
	"boomerang":      CategoryKids,

	// Documentary
	"discovery":          CategoryDocumentary,
	"history":            CategoryDocumentary,
	"natgeo":             CategoryDocumentary,
	"nationalgeographic": CategoryDocumentary,
	"animalplanet":       CategoryDocumentary,
	"tlc":                CategoryDocumentary,
	"sciencechannel":     CategoryDocumentary,
	"smithsonianchannel": CategoryDocumentary,

	// Music
	"mtv": CategoryMusic,
	"vh1": CategoryMusic,
	"cmt": CategoryMusic,
	"bet": CategoryMusic,
}

// Classifier resolves matched channels to content categories for the
// grouping workflow. The station directory supplies network affiliations for
// broadcast matches; the premium index supplies curated category annotations.
type Classifier struct {
	stations *Directory
	premium  *Index
}

// NewClassifier builds a classifier over the given reference indices. Either
// may be nil when only the other source is classified.
func NewClassifier(stations *Directory, premium *Index) *Classifier {
	return &Classifier{stations: stations, premium: premium}
}

// Classify maps a resolved channel to a content category. A premium match is
// classified by its list annotation first, then the curated table; a
// broadcast match by its station's network affiliation. An empty category is
// a normal "no category" outcome.
func (c *Classifier) Classify(matchedKey string, source Source) string {
	switch source {
	case SourcePremium:
		key := NormalizeKey(matchedKey)
		if c.premium != nil {
			if i, ok := c.premium.byKey[key]; ok {
				if cat := c.premium.entries[i].Category; cat != "" {
					return cat
				}
			}
		}
		return categoryTable[key]
	case SourceBroadcast:
		if c.stations == nil {
			return ""
		}
		st, ok := c.stations.Lookup(matchedKey)
		if !ok {
			return ""
		}
		network := ParseNetworkAffiliation(st.NetworkAffiliation)
		if cat, ok := categoryTable[NormalizeKey(network)]; ok {
			return cat
		}
		return CategoryBroadcast
	default:
		return ""
	}
}
