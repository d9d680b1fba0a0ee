package rules

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Catalog builds rules backed by a go-playground validator instance.
// Pass the instance explicitly so custom tags registered on it are available.
type Catalog struct {
	validate *validator.Validate
}

// NewCatalog wraps v. A nil v gets a fresh validator.
func NewCatalog(v *validator.Validate) *Catalog {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &Catalog{validate: v}
}

// Validate returns the underlying validator instance.
func (c *Catalog) Validate() *validator.Validate {
	return c.validate
}

// Tag checks the value against a validator tag such as "gte=3,lte=10".
// The rule is reported under the first tag name. An unknown or malformed tag
// is reported here, wrapped in ErrInvalidTag, instead of failing during validation.
func (c *Catalog) Tag(tag string) (Rule, error) {
	if err := c.checkTag(tag); err != nil {
		return Rule{}, err
	}
	name := tag
	if i := strings.IndexAny(name, ",=|"); i >= 0 {
		name = name[:i]
	}
	return c.tagRule(name, tag, "{{name}} must satisfy {{tag}}", "{{name}} must not satisfy {{tag}}"), nil
}

// MustTag is like Tag but panics on an invalid tag.
func (c *Catalog) MustTag(tag string) Rule {
	r, err := c.Tag(tag)
	if err != nil {
		panic(err)
	}
	return r
}

// checkTag parses tag once. go-playground panics on undefined tags and caches
// the parsed form, so later calls with the same tag are safe.
func (c *Catalog) checkTag(tag string) (err error) {
	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, r)
		}
	}()
	// a nil value only resolves the tag names, no validator runs
	_ = c.validate.Var(nil, tag)
	return nil
}

// Email accepts e-mail addresses.
func (c *Catalog) Email() Rule {
	return c.tagRule("email", "email", "{{name}} must be valid email", "{{name}} must not be an email")
}

// URL accepts absolute URLs.
func (c *Catalog) URL() Rule {
	return c.tagRule("url", "url", "{{name}} must be a URL", "{{name}} must not be a URL")
}

// IP accepts IPv4 and IPv6 addresses.
func (c *Catalog) IP() Rule {
	return c.tagRule("ip", "ip", "{{name}} must be an IP address", "{{name}} must not be an IP address")
}

func (c *Catalog) tagRule(name, tag, template, negated string) Rule {
	return newRule(name, template, negated,
		map[string]string{"tag": Stringify(tag)},
		func(value any) bool {
			if !isScalar(value) {
				return false
			}
			if v, ok := value.(json.Number); ok {
				if i, err := v.Int64(); err == nil {
					value = i
				} else if f, err := v.Float64(); err == nil {
					value = f
				}
			}
			return c.passes(value, tag)
		},
	)
}

// passes treats a panic from a bad tag parameter (e.g. "gte=abc") as a failure.
func (c *Catalog) passes(value any, tag string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return c.validate.Var(value, tag) == nil
}

// isScalar reports whether value is text, a number or a bool.
// Uploads, maps, lists and structs always fail tag rules; go-playground
// skips most tags for struct pointers.
func isScalar(value any) bool {
	switch value.(type) {
	case nil:
		return false
	case string, json.Number, bool:
		return true
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String, reflect.Bool:
		return true
	default:
		return false
	}
}
