package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/trangvu/lunacycle/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator wraps the message bundle and the active localizer. Output
// strings and the generative advice prompt both go through it, so the
// whole app, including what the model is asked, follows one language
// setting.
type Translator struct {
	Bundle    *goi18n.Bundle
	Localizer *goi18n.Localizer

	SupportedLanguages []string
}

// New loads the embedded locale files and activates the given language,
// falling back to English for missing messages.
func New(lang string) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tr := &Translator{Bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return tr
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		tr.SupportedLanguages = append(tr.SupportedLanguages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	tr.SetLanguage(lang)
	return tr
}

// SetLanguage switches the active localizer.
func (tr *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tr.Localizer = goi18n.NewLocalizer(tr.Bundle, lang, config.DefaultLanguage)
}

// Msg translates a key with no template data.
func (tr *Translator) Msg(key string) string {
	return tr.MsgData(key, nil)
}

// MsgData translates a key with template data, returning the key itself
// when no translation exists so a missing message never blanks output.
func (tr *Translator) MsgData(key string, data map[string]any) string {
	if tr.Localizer == nil {
		return key
	}
	msg, err := tr.Localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
