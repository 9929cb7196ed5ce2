package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"telegram-gift-certificates/internal/domain/model"
)

//go:embed locales
var LocalesFS embed.FS

// Translator resolves message templates for one language.
type Translator struct {
	translations map[string]string
}

// NewTranslator loads locales/<langCode>.yaml from the given filesystem.
func NewTranslator(fsys fs.FS, langCode string) (*Translator, error) {
	filePath := path.Join("locales", fmt.Sprintf("%s.yaml", langCode))

	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file %s: %w", filePath, err)
	}

	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translation file: %w", err)
	}

	return &Translator{translations: translations}, nil
}

// T resolves a template by key, formatting args into it when present.
// Unknown keys resolve to the key itself so a missing translation is
// visible instead of silent.
func (t *Translator) T(key string, args ...interface{}) string {
	format, ok := t.translations[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}

// Bundle holds one translator per supported language.
type Bundle struct {
	translators map[model.Language]*Translator
}

// NewBundle loads every supported language from the embedded locales.
func NewBundle() (*Bundle, error) {
	langs := []model.Language{model.LanguageRussian, model.LanguageEnglish}
	translators := make(map[model.Language]*Translator, len(langs))
	for _, lang := range langs {
		tr, err := NewTranslator(LocalesFS, string(lang))
		if err != nil {
			return nil, err
		}
		translators[lang] = tr
	}
	return &Bundle{translators: translators}, nil
}

// T resolves a key for the requested language, falling back to Russian
// when the language is unknown.
func (b *Bundle) T(lang model.Language, key string, args ...interface{}) string {
	tr, ok := b.translators[lang]
	if !ok {
		tr = b.translators[model.LanguageRussian]
	}
	return tr.T(key, args...)
}
