package rules_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqguard/pkg/params"
	"github.com/dmitrymomot/reqguard/pkg/rules"
	"github.com/dmitrymomot/reqguard/pkg/validation"
)

func messages(failures []validation.Failure) map[string]string {
	out := make(map[string]string, len(failures))
	for _, f := range failures {
		out[f.Rule] = f.Message
	}
	return out
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "davidepastore", `"davidepastore"`},
		{"numeric string", "321", `"321"`},
		{"json number", json.Number("321"), "321"},
		{"int", 89, "89"},
		{"float", 1.5, "1.5"},
		{"nil", nil, "`NULL`"},
		{"bool", true, "`TRUE`"},
		{"list", []any{"a", json.Number("2")}, "`{ \"a\", 2 }`"},
		{"map", map[string]any{"b": 1, "a": "x"}, "`{ \"a\": \"x\", \"b\": 1 }`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rules.Stringify(tt.value))
		})
	}
}

func TestLength(t *testing.T) {
	t.Parallel()

	t.Run("between", func(t *testing.T) {
		t.Parallel()
		failures := rules.Length(1, 5).Validate("davidepastore")
		require.Len(t, failures, 1)
		assert.Equal(t, "length", failures[0].Rule)
		assert.Equal(t, `"davidepastore" must have a length between 1 and 5`, failures[0].Message)
		assert.Equal(t, "{{name}} must have a length between {{minValue}} and {{maxValue}}", failures[0].Template)
		assert.Empty(t, rules.Length(1, 15).Validate("davidepastore"))
	})

	t.Run("counts runes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rules.Length(1, 4).Validate("héll"))
	})

	t.Run("min and max only", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{
			"length": "`NULL` must have a length greater than or equal to 1",
		}, messages(rules.MinLength(1).Validate(nil)))
		assert.Equal(t, map[string]string{
			"length": `"abc" must have a length lower than or equal to 2`,
		}, messages(rules.MaxLength(2).Validate("abc")))
	})

	t.Run("lists", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rules.Length(1, 2).Validate([]any{"a", "b"}))
		assert.NotEmpty(t, rules.Length(1, 2).Validate([]any{}))
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("between renders the value as passed", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "321 must be between 1 and 200", rules.Between(1, 200).Validate(json.Number("321"))[0].Message)
		assert.Equal(t, `"321" must be between 1 and 200`, rules.Between(1, 200).Validate("321")[0].Message)
		assert.Equal(t, `"89" must be between 1 and 60`, rules.Between(1, 60).Validate("89")[0].Message)
		assert.Empty(t, rules.Between(1, 200).Validate("123"))
	})

	t.Run("chain collects every failure", func(t *testing.T) {
		t.Parallel()
		v := rules.All(rules.NumericVal(), rules.Positive(), rules.Between(1, 200))
		failures := v.Validate("notvalid")
		require.Len(t, failures, 3)
		assert.Equal(t, []string{"numericVal", "positive", "between"},
			[]string{failures[0].Rule, failures[1].Rule, failures[2].Rule})
		assert.Equal(t, `"notvalid" must be numeric`, failures[0].Message)
	})

	t.Run("first stops early", func(t *testing.T) {
		t.Parallel()
		v := rules.First(rules.NumericVal(), rules.Positive(), rules.Between(1, 200))
		failures := v.Validate("notvalid")
		require.Len(t, failures, 1)
		assert.Equal(t, "numericVal", failures[0].Rule)
	})

	t.Run("integers", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rules.IntVal().Validate("42"))
		assert.Empty(t, rules.IntVal().Validate(json.Number("42")))
		assert.NotEmpty(t, rules.IntVal().Validate("4.2"))
		assert.NotEmpty(t, rules.IntVal().Validate(nil))
	})

	t.Run("sign and bounds", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rules.Negative().Validate(-1))
		assert.NotEmpty(t, rules.Positive().Validate(0))
		assert.Equal(t, "5 must be greater than or equal to 10", rules.Min(10).Validate(5)[0].Message)
		assert.Equal(t, "15 must be less than or equal to 10", rules.Max(10).Validate(15)[0].Message)
	})
}

func TestTextRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  rules.Rule
		value any
		valid bool
	}{
		{"alpha letters", rules.Alpha(), "Josh", true},
		{"alpha digits", rules.Alpha(), "j0sh", false},
		{"alpha empty", rules.Alpha(), "", false},
		{"alnum", rules.Alnum(), "rq3r", true},
		{"alnum number", rules.Alnum(), json.Number("12"), true},
		{"alnum symbol", rules.Alnum(), "rq-3r", false},
		{"digit", rules.Digit(), "0123", true},
		{"digit sign", rules.Digit(), "-1", false},
		{"no whitespace", rules.NoWhitespace(), "abc", true},
		{"whitespace", rules.NoWhitespace(), "a c", false},
		{"no whitespace nil", rules.NoWhitespace(), nil, true},
		{"string type", rules.StringType(), "1", true},
		{"string type number", rules.StringType(), json.Number("1"), false},
		{"not empty", rules.NotEmpty(), " ", false},
		{"in", rules.In("a", "b"), "b", true},
		{"not in", rules.In("a", "b"), "c", false},
		{"regex", rules.Regex(`^[a-z]+-\d+$`), "abc-12", true},
		{"uuid", rules.UUID(), "550e8400-e29b-41d4-a716-446655440000", true},
		{"uuid urn", rules.UUID(), "urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"date", rules.Date("2006-01-02"), "2016-08-23", true},
		{"date time", rules.Date("2006-01-02"), "2016-08-23 13:36:29", false},
		{"bool", rules.BoolVal(), "yes", true},
		{"array", rules.ArrayType(), []any{"a"}, true},
		{"array scalar", rules.ArrayType(), "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			failures := tt.rule.Validate(tt.value)
			if tt.valid {
				assert.Empty(t, failures)
				return
			}
			require.Len(t, failures, 1)
			assert.Equal(t, tt.rule.Name(), failures[0].Rule)
		})
	}

	t.Run("null message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{
			"alpha": "`NULL` must contain only letters (a-z)",
		}, messages(rules.Alpha().Validate(nil)))
	})

	t.Run("in renders the haystack", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "\"c\" must be in `{ \"a\", \"b\" }`", rules.In("a", "b").Validate("c")[0].Message)
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("optional skips absent and empty", func(t *testing.T) {
		t.Parallel()
		v := rules.Optional(rules.Alpha())
		assert.Empty(t, v.Validate(nil))
		assert.Empty(t, v.Validate(""))
		assert.NotEmpty(t, v.Validate("a1"))
	})

	t.Run("named replaces key and name", func(t *testing.T) {
		t.Parallel()
		v := rules.Named("notificationTitle", rules.All(rules.StringType(), rules.MinLength(1)))
		failures := v.Validate(nil)
		require.Len(t, failures, 2)
		assert.Equal(t, "notificationTitle", failures[0].Rule)
		assert.Equal(t, "notificationTitle must be a string", failures[0].Message)
		assert.Equal(t, "notificationTitle must have a length greater than or equal to 1", failures[1].Message)
		assert.Equal(t, "notificationTitle", failures[1].Params["name"])
	})

	t.Run("named optional passes absent", func(t *testing.T) {
		t.Parallel()
		v := rules.Named("notificationAction", rules.Optional(rules.All(rules.StringType(), rules.MinLength(1))))
		assert.Empty(t, v.Validate(nil))
	})

	t.Run("named keeps plain messages", func(t *testing.T) {
		t.Parallel()
		inner := validation.ValidatorFunc(func(any) []validation.Failure {
			return []validation.Failure{{Rule: "custom", Message: "plain"}}
		})
		failures := rules.Named("field", inner).Validate(nil)
		require.Len(t, failures, 1)
		assert.Equal(t, "field", failures[0].Rule)
		assert.Equal(t, "plain", failures[0].Message)
	})

	t.Run("not", func(t *testing.T) {
		t.Parallel()
		v := rules.Not(rules.Alpha())
		assert.Empty(t, v.Validate("a1"))
		failures := v.Validate("abc")
		require.Len(t, failures, 1)
		assert.Equal(t, "notAlpha", failures[0].Rule)
		assert.Equal(t, `"abc" must not contain letters (a-z)`, failures[0].Message)
	})

	t.Run("each", func(t *testing.T) {
		t.Parallel()
		v := rules.Each(rules.Alpha())
		assert.Empty(t, v.Validate([]any{"a", "b"}))
		failures := v.Validate([]any{"a", "1"})
		require.Len(t, failures, 1)
		assert.Equal(t, `"1" must contain only letters (a-z)`, failures[0].Message)
		assert.Equal(t, "each", v.Validate("a")[0].Rule)
	})

	t.Run("custom template", func(t *testing.T) {
		t.Parallel()
		r := rules.Length(1, 2).WithTemplate("{{name}} is too long")
		assert.Equal(t, `"abc" is too long`, r.Validate("abc")[0].Message)
	})
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	catalog := rules.NewCatalog(nil)

	t.Run("builtin tags", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, catalog.Email().Validate("john@example.com"))
		assert.Equal(t, `"nope" must be valid email`, catalog.Email().Validate("nope")[0].Message)
		assert.Empty(t, catalog.URL().Validate("https://example.com/a"))
		assert.Empty(t, catalog.IP().Validate("10.0.0.1"))
		assert.NotEmpty(t, catalog.IP().Validate(nil))
	})

	t.Run("custom tag", func(t *testing.T) {
		t.Parallel()
		gte, err := catalog.Tag("gte=3,lte=10")
		require.NoError(t, err)
		assert.Equal(t, "gte", gte.Name())
		assert.Empty(t, gte.Validate(json.Number("5")))
		assert.NotEmpty(t, gte.Validate(11))
	})

	t.Run("unknown tag is rejected when built", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Tag("notarealtag")
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrInvalidTag)

		_, err = catalog.Tag("")
		assert.ErrorIs(t, err, rules.ErrInvalidTag)

		assert.Panics(t, func() { catalog.MustTag("required,notarealtag") })
		assert.NotPanics(t, func() { catalog.MustTag("required,alphanum") })
	})

	t.Run("bad tag parameter fails instead of panicking", func(t *testing.T) {
		t.Parallel()
		r := catalog.MustTag("gte=abc")
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, r.Validate("value"))
		})
	})

	t.Run("non scalar values fail", func(t *testing.T) {
		t.Parallel()
		upload := &params.FileUpload{Filename: "a@b.co", Size: 3, Content: []byte("abc")}
		values := []any{
			upload,
			[]any{"a@b.co"},
			map[string]any{"address": "a@b.co"},
			struct{ Email string }{"a@b.co"},
		}
		for _, v := range values {
			assert.NotEmpty(t, catalog.Email().Validate(v), "%T", v)
			assert.NotEmpty(t, catalog.URL().Validate(v), "%T", v)
			assert.NotEmpty(t, catalog.IP().Validate(v), "%T", v)
		}
		assert.NotEmpty(t, catalog.MustTag("required").Validate(upload))
	})
}
