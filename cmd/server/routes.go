package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/reqguard/pkg/httpserver"
	"github.com/dmitrymomot/reqguard/pkg/i18n"
	"github.com/dmitrymomot/reqguard/pkg/params"
	"github.com/dmitrymomot/reqguard/pkg/requestid"
	"github.com/dmitrymomot/reqguard/pkg/rules"
	"github.com/dmitrymomot/reqguard/pkg/validation"
)

const maxAvatarSize = 1 << 20

var errNoTranslations = errors.New("no translations loaded")

// specs declares the validator tree of every validated route.
type specs struct {
	listUsers    *validation.Spec
	createUser   *validation.Spec
	getUser      *validation.Spec
	avatar       *validation.Spec
	notification *validation.Spec
	search       *validation.Spec
}

func newSpecs() specs {
	catalog := rules.NewCatalog(nil)
	username := rules.All(rules.Alnum(), rules.NoWhitespace(), rules.Length(1, 32))
	age := rules.All(rules.NumericVal(), rules.Positive(), rules.Between(1, 120))

	return specs{
		listUsers: validation.MustSpec(
			validation.Field("username", rules.Optional(username)),
			validation.Field("age", rules.Optional(age)),
			validation.Field("sort", rules.Optional(rules.In("name", "age", "created_at"))),
		),
		createUser: validation.MustSpec(
			validation.Field("username", username),
			validation.Field("age", age),
			validation.Group("email",
				validation.Field("address", catalog.Email()),
				validation.Field("verified", rules.Optional(rules.BoolVal())),
			),
			validation.Field("website", rules.Optional(catalog.URL())),
			validation.Field("birthday", rules.Optional(rules.Date(time.DateOnly))),
			validation.Field("tags", rules.Optional(rules.All(rules.ArrayType(), rules.Each(rules.Length(1, 16))))),
		),
		getUser: validation.MustSpec(
			validation.Field("id", rules.UUID()),
		),
		avatar: validation.MustSpec(
			validation.Field("avatar", rules.FileVal(maxAvatarSize, "image/png", "image/jpeg", "image/gif")),
		),
		notification: validation.MustSpec(
			validation.Group("message",
				validation.Group("notification",
					validation.Field("title", rules.Named("notificationTitle", rules.All(rules.StringType(), rules.MinLength(1)))),
					validation.Field("body", rules.Named("notificationBody", rules.All(rules.StringType(), rules.MinLength(1)))),
					validation.Field("actionName", rules.Named("notificationAction", rules.Optional(rules.All(rules.StringType(), rules.MinLength(1))))),
				),
			),
		),
		search: validation.MustSpec(
			validation.Field("q", rules.All(rules.NotEmpty(), rules.Optional(rules.MaxLength(64)))),
		),
	}
}

func newRouter(cfg Config, tr *i18n.Translator, log *slog.Logger) http.Handler {
	extractor := params.New(
		params.WithPathParams(params.ChiPathParams),
		params.WithMaxJSONSize(cfg.MaxBodySize),
		params.WithMaxXMLSize(cfg.MaxBodySize),
	)
	translate := func(r *http.Request) validation.Translator {
		return tr.RequestFunc(r)
	}
	guard := func(spec *validation.Spec, opts ...validation.Option) func(http.Handler) http.Handler {
		opts = append([]validation.Option{
			validation.WithExtractor(extractor.Extract),
			validation.WithTranslatorFunc(translate),
			validation.WithStatusCode(cfg.ValidationStatus),
			validation.WithLogger(log),
		}, opts...)
		return validation.New(spec, opts...).Handler
	}

	s := newSpecs()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(tr.Languages()...))))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(tr.Languages()) == 0 {
			return errNoTranslations
		}
		return nil
	}))

	r.With(guard(s.listUsers)).Get("/users", accepted)
	r.With(guard(s.createUser)).Post("/users", accepted)
	r.With(guard(s.getUser)).Get("/users/{id}", accepted)
	r.With(guard(s.avatar)).Post("/users/{id}/avatar", accepted)
	r.With(guard(s.notification)).Post("/notifications", accepted)
	r.With(guard(s.search, validation.WithPassThrough())).Get("/search", search)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func accepted(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

// search reports validation problems alongside a result instead of rejecting the request.
func search(w http.ResponseWriter, r *http.Request) {
	res, _ := validation.ResultFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"has_errors": res.HasErrors(),
		"errors":     res.Errors(),
		"results":    []string{},
	})
}
