package parse

import (
	"strconv"
	"strings"

	"github.com/dbai-tuwien/setafrup/internal/store"
)

type clauseBucket struct {
	indices []int
	cursor  int
}

// ParseProof reads the proof file, appending clauses to builder (which
// must already have its framework clauses loaded) and recording deletions.
// The proof must end with the empty clause; nothing may follow it.
func ParseProof(path string, semantics Semantics, builder *store.Builder) error {
	reader, err := newLineReader(path)
	if err != nil {
		return err
	}
	defer reader.close()

	builder.StartProof()
	numArguments := builder.ArgumentCount()
	occurrence := make([]int, numArguments)
	bySignature := make(map[string]*clauseBucket)

	foundEmpty := false
	for {
		line, ok, err := reader.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if strings.HasPrefix(line, "d") {
			if len(line) < 2 {
				return errorf(path, "clause deletion line '%s' is malformed", line)
			}
			cleaned := line[2:]
			clauseID := builder.NextIndex()
			members, err := parseClauseMembers(path, clauseID, line, cleaned, occurrence, numArguments, true)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				return errorf(path, "clause deletion line '%s' cannot be empty", line)
			}

			bucket, exists := bySignature[cleaned]
			if !exists {
				return errorf(path, "clause deletion line '%s' references a clause that does not exist", line)
			}
			if bucket.cursor >= len(bucket.indices) {
				return errorf(path, "clause deletion line '%s' references a clause that has already been deleted", line)
			}
			builder.DeleteClause(bucket.indices[bucket.cursor], clauseID)
			bucket.cursor++
			continue
		}

		classification := semantics.classify(line)
		if !classification.ok {
			return errorf(path, "clause line '%s' is malformed", line)
		}
		cleaned := line[classification.start:]
		clauseID := builder.NextIndex()
		members, err := parseClauseMembers(path, clauseID, line, cleaned, occurrence, numArguments, false)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			foundEmpty = true
			break
		}

		idx := builder.AddProofClause(members, classification.kind, classification.attackIndex)
		bucket, exists := bySignature[cleaned]
		if !exists {
			bucket = &clauseBucket{}
			bySignature[cleaned] = bucket
		}
		bucket.indices = append(bucket.indices, idx)
	}

	if !foundEmpty {
		return errorf(path, "the last line of the proof must be the empty clause")
	}
	if extra, ok, err := reader.next(); err != nil {
		return err
	} else if ok {
		return errorf(path, "the last line of the proof must be the empty clause, found '%s' after it", extra)
	}

	return nil
}

// parseClauseMembers parses a space-separated signed-integer clause body
// ending in a trailing "0", deduplicating repeated arguments the way the
// framework's attack-line parser does: an occurrence watch keyed by
// clauseID records the last clause to have consumed each argument, so a
// duplicate within the same clause is silently dropped. Deletion lines
// additionally re-stamp their members' watch entries to clauseID itself
// (rather than clauseID+1), keeping the watch consistent with the next
// real clause, which will receive that same index.
func parseClauseMembers(path string, clauseID int, line, cleaned string, occurrence []int, numArguments int, isDeletion bool) ([]store.Literal, error) {
	fields := strings.Split(cleaned, " ")
	if len(fields) < 1 || fields[len(fields)-1] != "0" {
		return nil, errorf(path, "the proof line '%s' is malformed", line)
	}

	var members []store.Literal
	for _, field := range fields[:len(fields)-1] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, errorf(path, "the proof line '%s' contains an invalid argument '%s'", line, field)
		}
		sign := n > 0
		abs := n
		if abs < 0 {
			abs = -abs
		}
		if abs == 0 || abs > numArguments {
			return nil, errorf(path, "the clause '%s' refers to an invalid argument '%s'", line, field)
		}
		idx := abs - 1
		if occurrence[idx] < clauseID+1 {
			members = append(members, store.Literal{Argument: idx, Sign: sign})
			occurrence[idx] = clauseID + 1
		}
	}

	if isDeletion {
		for _, m := range members {
			occurrence[m.Argument] = clauseID
		}
	}

	return members, nil
}
