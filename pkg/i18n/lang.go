package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

func newMatcher(defaultLang string, langs []string) language.Matcher {
	// the first supported tag is the matcher's fallback
	tags := []language.Tag{language.Make(defaultLang)}
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	return language.NewMatcher(tags)
}

// match resolves preferences against the supported codes. The matched tag is
// mapped back to the original code via the matcher's index.
func match(m language.Matcher, defaultLang string, langs []string, prefs ...string) string {
	var desired []language.Tag
	for _, p := range prefs {
		desired = append(desired, parsePreference(p)...)
	}
	if len(desired) == 0 {
		return defaultLang
	}

	_, idx, conf := m.Match(desired...)
	if conf == language.No || idx == 0 {
		return defaultLang
	}
	return langs[idx-1]
}

func parsePreference(p string) []language.Tag {
	p = strings.TrimSpace(p)
	if p == "" {
		return nil
	}
	if len(p) > maxAcceptLanguageLength {
		p = p[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(p)
	if err != nil {
		return nil
	}
	return tags
}

// ParseAcceptLanguage returns the supported language best matching an
// Accept-Language header, honouring quality values, or defaultLang.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	return match(newMatcher(defaultLang, supported), defaultLang, supported, header)
}
