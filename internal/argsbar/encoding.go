package argsbar

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/argsbar/internal/logging"
)

// Encoding describes the type of value an input collects. It decides,
// one character at a time, whether a buffer is still a valid prefix of
// that type.
type Encoding int

const (
	// EncodingString accepts any character. It is the default.
	EncodingString Encoding = iota
	// EncodingInteger accepts ASCII digits only.
	EncodingInteger
	// EncodingNumeric accepts ASCII digits and at most one decimal point.
	EncodingNumeric
	// EncodingBoolean spells out either "false" or "true".
	EncodingBoolean
)

// maxSuggestDistance bounds how far a mistyped encoding name may be from a
// real one before ParseEncoding stops offering it as a suggestion.
const maxSuggestDistance = 3

var encodingNames = map[Encoding]string{
	EncodingString:  "string",
	EncodingInteger: "integer",
	EncodingNumeric: "numeric",
	EncodingBoolean: "boolean",
}

// Encodings returns every encoding in declaration order.
func Encodings() []Encoding {
	return []Encoding{EncodingString, EncodingInteger, EncodingNumeric, EncodingBoolean}
}

// String returns the lowercase name of the encoding
func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding resolves an encoding from its name. Matching ignores case
// and surrounding whitespace; an empty name yields EncodingString.
func ParseEncoding(name string) (Encoding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return EncodingString, nil
	}

	for _, enc := range Encodings() {
		if enc.String() == normalized {
			return enc, nil
		}
	}

	if suggestion, ok := suggestEncoding(normalized); ok {
		return EncodingString, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownEncoding, name, suggestion)
	}
	return EncodingString, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
}

func suggestEncoding(name string) (string, bool) {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, enc := range Encodings() {
		dist := levenshtein.ComputeDistance(name, enc.String())
		if dist < bestDist {
			best, bestDist = enc.String(), dist
		}
	}
	return best, best != ""
}

// MarshalYAML encodes the encoding by name
func (e Encoding) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

// UnmarshalYAML decodes an encoding from its name
func (e *Encoding) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("encoding must be a string: %w", err)
	}
	parsed, err := ParseEncoding(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*e = parsed
	return nil
}

// PushChar appends ch to buffer if the encoding accepts it. A rejected
// character leaves buffer untouched.
func (e Encoding) PushChar(buffer *string, ch rune) error {
	if err := e.Accepts(*buffer, ch); err != nil {
		return err
	}
	*buffer += string(ch)
	return nil
}

// Accepts reports whether appending ch to buffer keeps buffer a valid
// prefix for this encoding. It returns nil on acceptance and a
// *RejectedCharacterError otherwise.
func (e Encoding) Accepts(buffer string, ch rune) error {
	switch e {
	case EncodingInteger:
		if !isASCIIDigit(ch) {
			return newRejection(e, buffer, ch, fmt.Sprintf("`%c` is not a digit", ch))
		}
		return nil
	case EncodingNumeric:
		return acceptsNumeric(buffer, ch)
	case EncodingBoolean:
		return acceptsBoolean(buffer, ch)
	default:
		return nil
	}
}

func acceptsNumeric(buffer string, ch rune) error {
	switch {
	case isASCIIDigit(ch):
		return nil
	case ch == '.' && !strings.ContainsRune(buffer, '.'):
		return nil
	default:
		return newRejection(EncodingNumeric, buffer, ch, fmt.Sprintf("Non-numeric not permitted: %c", ch))
	}
}

// acceptsBoolean walks the spelling of "false" or "true" by exact match on
// the buffer. Once either literal is complete nothing more is accepted.
func acceptsBoolean(buffer string, ch rune) error {
	switch buffer {
	case "":
		if ch != 'f' && ch != 't' {
			return newRejection(EncodingBoolean, buffer, ch, fmt.Sprintf("Expecting `f` or `t`, not `%c`", ch))
		}
		return nil

	case "f":
		return expectRune(buffer, ch, 'a')
	case "fa":
		return expectRune(buffer, ch, 'l')
	case "fal":
		return expectRune(buffer, ch, 's')
	case "fals":
		return expectRune(buffer, ch, 'e')

	case "t":
		return expectRune(buffer, ch, 'r')
	case "tr":
		return expectRune(buffer, ch, 'u')
	case "tru":
		return expectRune(buffer, ch, 'e')

	case "false", "true":
		return newRejection(EncodingBoolean, buffer, ch, fmt.Sprintf("`%s` set, not expecting %c", buffer, ch))

	default:
		// Unreachable while every buffer is built through PushChar.
		logging.Warn("Boolean encoding reached an unexpected buffer",
			zap.String("buffer", buffer),
			zap.String("char", string(ch)),
		)
		return newRejection(EncodingBoolean, buffer, ch, fmt.Sprintf("Bad State: %s, char: %c", buffer, ch))
	}
}

func expectRune(buffer string, ch, want rune) error {
	if ch != want {
		return newRejection(EncodingBoolean, buffer, ch, fmt.Sprintf("Expecting `%c`, not `%c`", want, ch))
	}
	return nil
}

func isASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
