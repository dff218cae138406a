// Package locale supplies display strings for the TUI, backed by go-i18n
// with embedded TOML bundles. The engine only passes template values (file
// names, counts, query text); layout belongs to the message files.
package locale

import (
	"embed"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// languages lists the bundled UI languages, in cycle order.
var languages = []string{"en", "pt-BR"}

// Translator renders localized prompt and label text.
type Translator struct {
	bundle  *i18n.Bundle
	current int
}

// New builds a Translator with lang as the active language. Unknown or
// unparsable languages fall back to English.
func New(lang string) *Translator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, l := range languages {
		file := "active." + l + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("failed to load locale bundle")
		}
	}

	current := slices.Index(languages, tag.String())
	if current < 0 {
		current = 0
	}

	return &Translator{bundle: bundle, current: current}
}

// Language returns the active language code.
func (t *Translator) Language() string {
	return languages[t.current]
}

// CycleLanguage switches to the next bundled language and returns its code.
func (t *Translator) CycleLanguage() string {
	t.current = (t.current + 1) % len(languages)
	return t.Language()
}

// T renders the message identified by key with the given template data.
// Missing messages fall back to English, then to the key itself.
func (t *Translator) T(key string, data map[string]any) string {
	return t.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	}, key)
}

// TCount renders a pluralized message for count.
func (t *Translator) TCount(key string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count

	return t.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  count,
	}, key)
}

func (t *Translator) localize(cfg *i18n.LocalizeConfig, key string) string {
	localizer := i18n.NewLocalizer(t.bundle, t.Language(), languages[0])
	msg, err := localizer.Localize(cfg)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("missing locale message")
		return key
	}
	return msg
}
