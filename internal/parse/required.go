package parse

import (
	"strconv"
	"strings"

	"github.com/dbai-tuwien/setafrup/internal/store"
)

// ParseRequired reads the required-arguments file: each line is either a
// signed 1-based argument number, or "s [-]name" naming an argument via
// the description file's name map.
func ParseRequired(path string, numArguments int, names map[string]nameEntry) ([]store.Literal, error) {
	reader, err := newLineReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.close()

	var required []store.Literal
	for {
		line, ok, err := reader.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		var lit store.Literal
		if strings.HasPrefix(line, "s ") {
			// Description names may themselves contain spaces; everything
			// after the marker (minus a leading '-') is the name.
			token := line[2:]
			negative := strings.HasPrefix(token, "-")
			name := token
			if negative {
				name = token[1:]
			}
			entry, exists := names[name]
			if !exists {
				return nil, errorf(path, "the required argument file references argument name '%s' that is invalid", name)
			}
			if entry.ambiguous {
				return nil, errorf(path, "the required argument file references argument name '%s' that is not unique", name)
			}
			lit = store.Literal{Argument: entry.index, Sign: !negative}
		} else {
			if strings.ContainsRune(line, ' ') {
				return nil, errorf(path, "the line '%s' in the arguments file is malformed", line)
			}
			negative := strings.HasPrefix(line, "-")
			digits := line
			if negative {
				digits = line[1:]
			}
			number, err := strconv.Atoi(digits)
			if err != nil || number <= 0 || number > numArguments {
				return nil, errorf(path, "the required argument file references argument number '%s' that is invalid", digits)
			}
			lit = store.Literal{Argument: number - 1, Sign: !negative}
		}

		required = append(required, lit)
	}

	return required, nil
}

// RequiredConsistent reports whether no argument appears with conflicting
// required signs.
func RequiredConsistent(required []store.Literal) bool {
	seen := make(map[int]bool, len(required))
	for _, lit := range required {
		if sign, ok := seen[lit.Argument]; ok {
			if sign != lit.Sign {
				return false
			}
		} else {
			seen[lit.Argument] = lit.Sign
		}
	}
	return true
}
