package terminal

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bft-labs/yahtzee/internal/domain"
)

var supportedTags = []language.Tag{
	language.English,
	language.German,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the languages the console can speak.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag maps a language name such as "de" or "en-GB" onto a supported
// tag. An empty name resolves to the default.
func ResolveTag(lang string) (language.Tag, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Default(), nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("unsupported language %q", lang)
	}
	return supportedTags[index], nil
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// CategoryName returns the localized name of a score card box.
func CategoryName(p *message.Printer, c domain.Category) string {
	if !c.Valid() {
		return c.String()
	}
	return p.Sprintf(categoryKey(c))
}

func categoryKey(c domain.Category) string {
	return fmt.Sprintf("category.%d", c.Index())
}
