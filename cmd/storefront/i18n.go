package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/invopop/ctxi18n"
	"github.com/invopop/ctxi18n/i18n"
)

//go:embed locales
var locales embed.FS

// withLanguage loads the form translations and returns a context in lang. Unknown languages fall
// back to fallbackLang, which must have a bundle.
func withLanguage(ctx context.Context, lang string, fallbackLang string) (context.Context, error) {
	bundles, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}
	if err := ctxi18n.LoadWithDefault(bundles, i18n.Code(fallbackLang)); err != nil {
		return nil, fmt.Errorf("cannot load translations for %q: %w", fallbackLang, err)
	}
	ctxi18n.DefaultLocale = i18n.Code(fallbackLang)

	if len(lang) == 0 {
		lang = fallbackLang
	}
	localized, err := ctxi18n.WithLocale(ctx, lang)
	if errors.Is(err, ctxi18n.ErrMissingLocale) {
		slog.Warn("No translations for language, using fallback", "lang", lang, "fallback", fallbackLang)
		return ctxi18n.WithLocale(ctx, fallbackLang)
	}
	return localized, err
}
