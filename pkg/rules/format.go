package rules

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// In accepts values whose text equals one of haystack.
func In(haystack ...string) Rule {
	rendered := make([]string, len(haystack))
	for i, h := range haystack {
		rendered[i] = Stringify(h)
	}
	return newRule("in",
		"{{name}} must be in {{haystack}}",
		"{{name}} must not be in {{haystack}}",
		map[string]string{"haystack": "`{ " + strings.Join(rendered, ", ") + " }`"},
		func(value any) bool {
			s, ok := toText(value)
			if !ok {
				return false
			}
			for _, h := range haystack {
				if s == h {
					return true
				}
			}
			return false
		},
	)
}

// Regex accepts text matching pattern. It panics on an invalid pattern.
func Regex(pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return newRule("regex",
		"{{name}} must validate against {{regex}}",
		"{{name}} must not validate against {{regex}}",
		map[string]string{"regex": Stringify(pattern)},
		func(value any) bool {
			s, ok := toText(value)
			return ok && re.MatchString(s)
		},
	)
}

// UUID accepts canonical UUID strings of any version.
func UUID() Rule {
	return newRule("uuid",
		"{{name}} must be a valid UUID",
		"{{name}} must not be a valid UUID",
		nil,
		func(value any) bool {
			s, ok := value.(string)
			if !ok || len(s) != 36 {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
	)
}

// Date accepts strings parsed by layout, e.g. time.DateOnly.
func Date(layout string) Rule {
	return newRule("date",
		"{{name}} must be a valid date in the format {{sample}}",
		"{{name}} must not be a valid date in the format {{sample}}",
		map[string]string{"sample": Stringify(time.Date(2005, 12, 30, 1, 2, 3, 0, time.UTC).Format(layout))},
		func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			_, err := time.Parse(layout, s)
			return err == nil
		},
	)
}
