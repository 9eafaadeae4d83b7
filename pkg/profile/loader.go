package profile

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mdrive-go/mdrive-go/pkg/register"
)

// SectionRegisters is the only section the loader interprets.
const SectionRegisters = "registers"

// Loader parses profiles. The zero value is ready to use.
type Loader struct {
	// Logger receives warnings about skipped keys. Defaults to slog.Default().
	Logger *slog.Logger

	// Strict requires every register symbol to be bound.
	Strict bool
}

// Parse parses profile text with the default lenient loader.
func Parse(text string) (*register.Map, error) {
	return (&Loader{}).Parse(text)
}

// Load reads and parses a profile file with the default lenient loader.
func Load(path string) (*register.Map, error) {
	return (&Loader{}).Load(path)
}

// Parse parses profile text.
func (l *Loader) Parse(text string) (*register.Map, error) {
	return l.parse("", strings.NewReader(text))
}

// LoadReader parses a profile from r.
func (l *Loader) LoadReader(r io.Reader) (*register.Map, error) {
	return l.parse("", r)
}

// Load reads and parses the profile at path. A missing or unreadable file
// is a *ConfigError wrapping the OS error.
func (l *Loader) Load(path string) (*register.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "unable to open", Cause: err}
	}
	defer f.Close()

	return l.parse(path, f)
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// token is a whitespace separated word and the line it came from.
type token struct {
	text string
	line int
}

// tokenize splits r into tokens, dropping comments.
func tokenize(r io.Reader) ([]token, error) {
	var tokens []token

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, field := range strings.Fields(line) {
			tokens = append(tokens, token{text: field, line: lineNum})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (l *Loader) parse(path string, r io.Reader) (*register.Map, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "read failed", Cause: err}
	}

	log := l.logger()
	bindings := make(map[register.Symbol]register.Address)
	section := ""

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		i++

		if isSection(tok.text) {
			header := tok.text
			// "[ registers ]" arrives as several tokens on one line.
			for !strings.HasSuffix(header, "]") && i < len(tokens) && tokens[i].line == tok.line {
				header += tokens[i].text
				i++
			}
			if !strings.HasSuffix(header, "]") {
				log.Warn("unterminated section header", "header", header, "line", tok.line, "path", path)
			}
			section = sectionName(header)
			continue
		}
		if section != SectionRegisters {
			continue
		}

		key, value, hasValue := splitAssignment(tok.text)
		if !hasValue {
			// Optional separator, possibly glued to the value ("= 0x57" or "=0x57").
			if i < len(tokens) && strings.HasPrefix(tokens[i].text, "=") {
				value = tokens[i].text[1:]
				hasValue = value != ""
				i++
			}
		}
		if !hasValue {
			if i >= len(tokens) || isSection(tokens[i].text) {
				return nil, errMissingValue(path, tok.line, key)
			}
			value = tokens[i].text
			i++
		}
		if key == "" {
			return nil, &ConfigError{Path: path, Line: tok.line, Message: "value without key"}
		}

		sym, ok := register.ParseSymbol(key)
		if !ok {
			log.Warn("unknown register key", "key", key, "line", tok.line, "path", path)
			continue
		}

		addr, err := parseAddress(value)
		if err != nil {
			return nil, errInvalidAddress(path, tok.line, key, value, err)
		}

		if prev, dup := bindings[sym]; dup {
			log.Warn("duplicate register key", "key", key, "line", tok.line,
				"previous", prev.String(), "address", addr.String())
		}
		bindings[sym] = addr
	}

	m := register.NewMap(bindings)
	if l.Strict {
		if err := m.Validate(); err != nil {
			return nil, &ConfigError{Path: path, Message: err.Error(), Cause: err}
		}
	}
	return m, nil
}

// isSection reports whether a token opens a section.
func isSection(text string) bool {
	return strings.HasPrefix(text, "[")
}

// sectionName normalizes a section token such as "[Registers]".
func sectionName(text string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(text, "[]")))
}

// splitAssignment splits a "key=value" token. hasValue is false when the
// token holds only a key, or a key followed by a bare '='.
func splitAssignment(text string) (key, value string, hasValue bool) {
	key, value, found := strings.Cut(text, "=")
	if !found || value == "" {
		return key, "", false
	}
	return key, value, true
}

var errEmptyAddress = errors.New("empty address")

// parseAddress parses a hexadecimal register address.
func parseAddress(s string) (register.Address, error) {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" {
		return 0, errEmptyAddress
	}
	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, err
	}
	return register.Address(v), nil
}
