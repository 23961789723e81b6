// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package locale translates user-facing API messages.

Every message is an *i18n.Message whose Other field is the English text.
Translations for other languages are embedded from i18n/active.<lang>.json:

	bundle, err := locale.NewBundle()
	l := bundle.Localizer(r.Header.Get("Accept-Language"))
	msg := locale.Localize(l, locale.ErrFieldRequired, map[string]any{"Field": "title"})

The middleware stores the request's localizer in its context; FromContext
returns it, or an English localizer when none was stored.
*/
package locale
