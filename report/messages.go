package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	keyTitle       = "title"
	keyComputing   = "computing"
	keyHeadLeft    = "heading.left"
	keyHeadRight   = "heading.right"
	keyColStep     = "col.step"
	keyUndefined   = "undefined"
	keyLimitLeft   = "summary.left"
	keyLimitRight  = "summary.right"
	keyDifference  = "summary.diff"
	keyFound       = "verdict.found"
	keyLimitValue  = "verdict.value"
	keyExact       = "verdict.exact"
	keyError       = "verdict.error"
	keyNotFound    = "verdict.none"
	keyReasonUndef = "reason.undefined"
	keyReasonDiff  = "reason.disagree"
)

// supported lists the languages with a full message set; the first entry
// is the fallback.
var supported = []language.Tag{language.English, language.Indonesian}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.English: {
		keyTitle:       "=== LIMIT: f(x) = %s ===",
		keyComputing:   "Computing lim(x→%s) f(x)",
		keyHeadLeft:    "APPROACH FROM THE LEFT (x < %s)",
		keyHeadRight:   "APPROACH FROM THE RIGHT (x > %s)",
		keyColStep:     "Step",
		keyUndefined:   "undefined",
		keyLimitLeft:   "Limit from left",
		keyLimitRight:  "Limit from right",
		keyDifference:  "Difference",
		keyFound:       "LIMIT FOUND",
		keyLimitValue:  "lim(x→%s) f(x) = %s",
		keyExact:       "Exact value",
		keyError:       "Error",
		keyNotFound:    "LIMIT DOES NOT EXIST",
		keyReasonUndef: "function undefined near the point",
		keyReasonDiff:  "one-sided limits disagree",
	},
	language.Indonesian: {
		keyTitle:       "=== LIMIT: f(x) = %s ===",
		keyComputing:   "Menghitung lim(x→%s) f(x)",
		keyHeadLeft:    "PENDEKATAN DARI KIRI (x < %s)",
		keyHeadRight:   "PENDEKATAN DARI KANAN (x > %s)",
		keyColStep:     "Langkah",
		keyUndefined:   "tak terdefinisi",
		keyLimitLeft:   "Limit dari kiri",
		keyLimitRight:  "Limit dari kanan",
		keyDifference:  "Selisih",
		keyFound:       "LIMIT DITEMUKAN",
		keyLimitValue:  "lim(x→%s) f(x) = %s",
		keyExact:       "Nilai eksak",
		keyError:       "Galat",
		keyNotFound:    "LIMIT TIDAK ADA",
		keyReasonUndef: "fungsi tidak terdefinisi di sekitar titik",
		keyReasonDiff:  "limit sepihak tidak sama",
	},
}

var messageCatalog = mustBuildCatalog()

func mustBuildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, set := range messages {
		for key, msg := range set {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("report: build catalog: " + err.Error())
			}
		}
	}

	return b
}

// matchLanguage maps any tag onto one of the supported languages.
func matchLanguage(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)

	return supported[idx]
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(matchLanguage(tag), message.Catalog(messageCatalog))
}

// Languages returns the languages Render has messages for.
func Languages() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)

	return out
}
