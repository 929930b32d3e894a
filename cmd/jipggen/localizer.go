package main

import (
	"github.com/kaptinlin/go-i18n"

	"github.com/macsencasaus/jipg-go"
)

// localizer loads the embedded diagnostics bundle and returns a
// localizer for lang, falling back to the bundle's default locale for
// an unrecognized one rather than failing generation over a typo in
// --lang.
func localizer(lang string) (*i18n.Localizer, error) {
	bundle, err := jipg.GetI18n()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(lang), nil
}
