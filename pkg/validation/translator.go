package validation

// Translator rewrites a raw message or template into its final form.
// Implementations must be safe for concurrent use.
type Translator func(message string) string

// Identity returns the message unchanged.
func Identity(message string) string {
	return message
}

// MapTranslator returns a Translator backed by a fixed catalog.
// Messages without an entry pass through unchanged.
func MapTranslator(catalog map[string]string) Translator {
	// copy so later writes to catalog cannot race with readers
	m := make(map[string]string, len(catalog))
	for k, v := range catalog {
		m[k] = v
	}
	return func(message string) string {
		if translated, ok := m[message]; ok {
			return translated
		}
		return message
	}
}
