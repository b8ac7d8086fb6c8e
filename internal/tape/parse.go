package tape

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseConfiguration parses the textual notation into a configuration. The
// input must contain exactly one head marker (`<` or `>`); tokens before it
// fill the left tape in encounter order, tokens after it fill the right tape
// head-first (the parsed right side is reversed so the head-adjacent item
// ends up last, matching the tape's internal orientation).
func ParseConfiguration(s string) (Configuration, error) {
	conf, marker, err := parseTokens(s)
	if err != nil {
		return Configuration{}, err
	}
	if !marker {
		return Configuration{}, fmt.Errorf("parse configuration %q: missing head marker", s)
	}
	reverse(conf.Right)
	return conf, nil
}

// ParseTape parses a one-sided literal sequence with no head marker.
func ParseTape(s string) (Tape, error) {
	conf, marker, err := parseTokens(s)
	if err != nil {
		return nil, err
	}
	if marker {
		return nil, fmt.Errorf("parse tape %q: unexpected head marker", s)
	}
	return conf.Left, nil
}

func parseTokens(s string) (conf Configuration, marker bool, err error) {
	tape := &conf.Left

	for _, token := range strings.Fields(s) {
		switch {
		case strings.HasSuffix(token, ":"):
			steps, err := strconv.ParseUint(token[:len(token)-1], 10, 64)
			if err != nil {
				return conf, false, fmt.Errorf("parse step prefix %q: %w", token, err)
			}
			conf.Steps = steps
		case token == "<" || token == ">":
			if marker {
				return conf, false, fmt.Errorf("parse %q: more than one head marker", s)
			}
			marker = true
			tape = &conf.Right
			conf.Dir = Left
			if token == ">" {
				conf.Dir = Right
			}
		case strings.Contains(token, "^"):
			base, expStr, _ := strings.Cut(token, "^")
			exp, err := strconv.ParseUint(expStr, 10, 64)
			if err != nil {
				return conf, false, fmt.Errorf("parse exponent in %q: %w", token, err)
			}
			if base == "x" {
				tape.Push(X(exp))
			} else if len(base) == 1 && base[0] >= 'a' && base[0] <= 'z' {
				tape.Push(E(base[0]-'a', exp))
			} else {
				return conf, false, fmt.Errorf("parse %q: unknown block %q", token, base)
			}
		case strings.HasPrefix(token, "L("):
			if !strings.HasSuffix(token, ")") {
				return conf, false, fmt.Errorf("parse %q: unterminated L(...)", token)
			}
			code, err := strconv.ParseUint(token[2:len(token)-1], 10, 16)
			if err != nil {
				return conf, false, fmt.Errorf("parse %q: %w", token, err)
			}
			tape.Push(L(uint16(code)))
		default:
			for _, symbol := range token {
				switch {
				case symbol == 'D':
					tape.Push(D)
				case symbol == 'P':
					tape.Push(P)
				case symbol >= '0' && symbol <= '9':
					tape.Push(C(uint8(symbol - '0')))
				case symbol == 'x':
					tape.Push(X(1))
				case symbol == '!':
					tape.Push(Sentinel)
				default:
					return conf, false, fmt.Errorf("parse %q: unexpected symbol %q", token, symbol)
				}
			}
		}
	}
	return conf, marker, nil
}

func reverse(t Tape) {
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
}
