// Package i18n loads message catalogs and negotiates the request language.
//
// Catalogs are keyed by language, then by message key. A key can be a dotted path
// into nested maps or a literal message, which is how validation templates are
// translated:
//
//	it:
//	  "{{name}} must be numeric": "{{name}} deve essere numerico"
//	  errors:
//	    not_found: "Risorsa %{id} non trovata"
//
// Translations come from a TranslationAdapter: MapAdapter, FileAdapter, or FSAdapter
// for a directory in an embed.FS or os.DirFS. JSON and YAML files are supported.
//
//	//go:embed translations
//	var files embed.FS
//
//	tr, err := i18n.New(ctx, i18n.NewFSAdapter(files, "translations"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	msg := tr.T("it", "errors.not_found", "id", "42")
//
// Middleware negotiates the language from cookie, query, header and Accept-Language
// (matching via golang.org/x/text/language) and stores it in the request context.
// Translator.RequestFunc turns that into a per-request message rewriter:
//
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(tr.Languages()...))))
//	mw := validation.New(spec, validation.WithTranslatorFunc(func(r *http.Request) validation.Translator {
//	    return tr.RequestFunc(r)
//	}))
package i18n
