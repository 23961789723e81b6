// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed i18n/active.*.json
var messageFiles embed.FS

// Bundle holds every translation shipped with the server. English is the
// default language and comes from the DefaultMessage of each message.
type Bundle struct {
	*i18n.Bundle
	tags    []language.Tag
	matcher language.Matcher
}

// NewBundle loads all embedded translation files.
func NewBundle() (*Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := fs.ReadDir(messageFiles, "i18n")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded i18n directory")
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || name == "active.en.json" {
			continue
		}
		data, err := messageFiles.ReadFile(path.Join("i18n", name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read message file %s", name)
		}
		if _, err := b.ParseMessageFileBytes(data, name); err != nil {
			return nil, errors.Wrapf(err, "failed to load message file %s", name)
		}
	}

	tags := b.LanguageTags()
	return &Bundle{
		Bundle:  b,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Localizer returns a localizer for the best supported match of an
// Accept-Language header value. Unparseable headers fall back to English.
func (b *Bundle) Localizer(acceptLanguage string) *i18n.Localizer {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return i18n.NewLocalizer(b.Bundle, language.English.String())
	}

	_, index, _ := b.matcher.Match(tags...)
	return i18n.NewLocalizer(b.Bundle, b.tags[index].String())
}

// Localize renders m with data, falling back to the English text when the
// message is missing from the chosen language.
func Localize(l *i18n.Localizer, m *i18n.Message, data map[string]any) string {
	return localize(l, &i18n.LocalizeConfig{DefaultMessage: m, TemplateData: data})
}

// LocalizeCount is Localize for messages with plural forms chosen by count.
func LocalizeCount(l *i18n.Localizer, m *i18n.Message, count int, data map[string]any) string {
	return localize(l, &i18n.LocalizeConfig{DefaultMessage: m, TemplateData: data, PluralCount: count})
}

func localize(l *i18n.Localizer, lc *i18n.LocalizeConfig) string {
	m := lc.DefaultMessage
	s, err := l.Localize(lc)
	var notFound *i18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		slog.Warn("failed to localize message", "message_id", m.ID, "error", err)
	}
	if s == "" {
		return m.Other
	}
	return s
}

type localizerKey struct{}

var fallback = i18n.NewLocalizer(i18n.NewBundle(language.English), language.English.String())

// NewContext returns a context carrying l.
func NewContext(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey{}, l)
}

// FromContext returns the localizer stored in ctx, or an English one.
func FromContext(ctx context.Context) *i18n.Localizer {
	if l, ok := ctx.Value(localizerKey{}).(*i18n.Localizer); ok && l != nil {
		return l
	}
	return fallback
}
