package processor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Text processes free text: counts characters and words.
type Text struct{}

func (p *Text) Kind() string { return "text" }

// Validate accepts strings that are not purely numeric; a bare number belongs
// to the numeric processor.
func (p *Text) Validate(data any) error {
	s, ok := data.(string)
	if !ok {
		return fmt.Errorf("%w: text processor expects a string, got %T", ErrInvalidInput, data)
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return fmt.Errorf("%w: %q is purely numeric", ErrInvalidInput, s)
	}
	return nil
}

func (p *Text) Process(data any) (string, error) {
	if err := p.Validate(data); err != nil {
		return "", err
	}
	s := data.(string)

	chars := utf8.RuneCountInString(s)
	words := len(strings.Fields(s))

	return fmt.Sprintf("Processed text: %d characters, %d words", chars, words), nil
}
