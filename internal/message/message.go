// Package message holds the user-facing strings of the wordbloom CLI in
// Spanish and English.
package message

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a translatable message.
type Key string

// Message keys. Arguments are documented next to each key.
const (
	// MaybePresent takes the word.
	MaybePresent Key = "maybe-present"
	// NotPresent takes the word.
	NotPresent Key = "not-present"
	// Prompt takes no arguments.
	Prompt Key = "prompt"
	// FilterSummary takes size, hash count and words loaded.
	FilterSummary Key = "filter-summary"
	// FalsePositives takes confirmed false positives, absent probes,
	// observed rate and estimated rate.
	FalsePositives Key = "false-positives"
	// LoadFailed takes the error.
	LoadFailed Key = "load-failed"
	// ReadFailed takes the error.
	ReadFailed Key = "read-failed"
)

var entries = map[Key]map[language.Tag]string{
	MaybePresent: {
		language.Spanish: "La palabra '%s' puede que esté en el diccionario",
		language.English: "'%s' might be in the dictionary",
	},
	NotPresent: {
		language.Spanish: "La palabra '%s' no está en el diccionario",
		language.English: "'%s' is definitely not in the dictionary",
	},
	Prompt: {
		language.Spanish: "Introduce palabras para comprobar (Ctrl+D para salir):",
		language.English: "Enter words to spell check (press Ctrl+D to exit):",
	},
	FilterSummary: {
		language.Spanish: "Filtro de %d bits con %d funciones hash, %d palabras cargadas",
		language.English: "Filter of %d bits with %d hash functions, %d words loaded",
	},
	FalsePositives: {
		language.Spanish: "Falsos positivos: %d de %d palabras ausentes (tasa observada %.4f, estimada %.4f)",
		language.English: "False positives: %d of %d absent words (observed rate %.4f, estimated %.4f)",
	},
	LoadFailed: {
		language.Spanish: "No se pudo cargar el diccionario: %v",
		language.English: "Error reading dictionary: %v",
	},
	ReadFailed: {
		language.Spanish: "Error leyendo la palabra: %v",
		language.English: "Error reading word: %v",
	},
}

// Supported lists the available languages; the first is the default.
var Supported = []language.Tag{language.Spanish, language.English}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(Supported)
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byLang := range entries {
		for tag, msg := range byLang {
			// Keys and tags are static; SetString only fails on malformed input.
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Printer formats messages in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a printer for lang, a BCP 47 tag such as "es" or
// "en-GB". Unknown or unsupported languages fall back to English.
func NewPrinter(lang string) *Printer {
	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		if _, idx, conf := matcher.Match(parsed); conf != language.No {
			tag = Supported[idx]
		}
	}

	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Language returns the language messages are printed in.
func (p *Printer) Language() language.Tag {
	return p.tag
}

// Sprintf formats the message for key.
func (p *Printer) Sprintf(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}
