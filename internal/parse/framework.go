package parse

import (
	"strconv"
	"strings"

	"github.com/dbai-tuwien/setafrup/internal/store"
)

// nameEntry resolves an argument name to its index; ambiguous marks a
// name used by more than one description line (such a name is never a
// valid reference in the required-arguments file).
type nameEntry struct {
	index     int
	ambiguous bool
}

// ParseFramework reads the framework file (preamble plus attack lines)
// and, if descriptionPath is non-empty, the description file, building a
// Builder for the resulting arguments and attack clauses plus a
// name-to-argument-index map for ParseRequired to consult.
func ParseFramework(frameworkPath, descriptionPath string) (*store.Builder, map[string]nameEntry, error) {
	reader, err := newLineReader(frameworkPath)
	if err != nil {
		return nil, nil, err
	}
	defer reader.close()

	preamble, ok, err := reader.next()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, errorf(frameworkPath, "the supplied instance contains no preamble")
	}

	fields := strings.Split(preamble, " ")
	if len(fields) != 3 || fields[2] != "0" {
		return nil, nil, errorf(frameworkPath, "preamble is malformed: %s", preamble)
	}
	numArguments, err := strconv.Atoi(fields[0])
	if err != nil || numArguments < 0 {
		return nil, nil, errorf(frameworkPath, "the number of arguments in the preamble is invalid: %s", fields[0])
	}
	numAttacks, err := strconv.Atoi(fields[1])
	if err != nil || numAttacks < 0 {
		return nil, nil, errorf(frameworkPath, "the number of attacks in the preamble is invalid: %s", fields[1])
	}

	builder := store.NewBuilder(numArguments)
	occurrence := make([]int, numArguments)

	for count := 0; count < numAttacks; count++ {
		line, ok, err := reader.next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, errorf(frameworkPath, "instance contains fewer attacks than specified in the preamble")
		}

		fields := strings.Split(line, " ")
		if len(fields) < 3 || fields[len(fields)-1] != "0" {
			return nil, nil, errorf(frameworkPath, "the attack '%s' is malformed", line)
		}

		attackedNumber, err := strconv.Atoi(fields[0])
		if err != nil || attackedNumber <= 0 || attackedNumber > numArguments {
			return nil, nil, errorf(frameworkPath, "the attacked argument index '%s' is invalid in line '%s'", fields[0], line)
		}
		attackedIdx := attackedNumber - 1

		clauseIdx := builder.NextIndex()
		var attackers []int
		for _, field := range fields[1 : len(fields)-1] {
			memberNumber, err := strconv.Atoi(field)
			if err != nil {
				return nil, nil, errorf(frameworkPath, "the attack '%s' contains an invalid attack member '%s'", line, field)
			}
			if memberNumber == 0 {
				break
			}
			if memberNumber < 0 || memberNumber > numArguments {
				return nil, nil, errorf(frameworkPath, "the attack '%s' refers to an invalid attack member '%s'", line, field)
			}
			memberIdx := memberNumber - 1
			if occurrence[memberIdx] < clauseIdx+1 {
				attackers = append(attackers, memberIdx)
				occurrence[memberIdx] = clauseIdx + 1
			}
		}

		builder.AddAttack(attackedIdx, attackers)
	}

	if extra, ok, err := reader.next(); err != nil {
		return nil, nil, err
	} else if ok {
		return nil, nil, errorf(frameworkPath, "instance contains more attacks than specified in the preamble: %s", extra)
	}

	names := make(map[string]nameEntry)
	if descriptionPath != "" {
		if err := parseDescription(descriptionPath, numArguments, names); err != nil {
			return nil, nil, err
		}
	}

	return builder, names, nil
}

func parseDescription(path string, numArguments int, names map[string]nameEntry) error {
	reader, err := newLineReader(path)
	if err != nil {
		return err
	}
	defer reader.close()

	for {
		line, ok, err := reader.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		spacePos := strings.IndexByte(line, ' ')
		if spacePos < 1 {
			return errorf(path, "the description line '%s' is malformed", line)
		}
		number, err := strconv.Atoi(line[:spacePos])
		if err != nil || number <= 0 || number > numArguments {
			return errorf(path, "the description line '%s' references an invalid argument '%s'", line, line[:spacePos])
		}
		name := line[spacePos+1:]

		if entry, exists := names[name]; exists {
			entry.ambiguous = true
			names[name] = entry
		} else {
			names[name] = nameEntry{index: number - 1}
		}
	}
	return nil
}
