package parse

import (
	"strconv"
	"strings"

	"github.com/dbai-tuwien/setafrup/internal/store"
)

// Semantics selects which proof-line grammar the proof parser uses, and
// which verifier a bare "i" proof line resolves to.
type Semantics int

const (
	Admissible Semantics = iota
	Stable
)

// ParseSemanticsFlag maps the CLI's -s/--semantics value to a Semantics,
// matching the two spellings the original clap ValueEnum exposed.
func ParseSemanticsFlag(s string) (Semantics, bool) {
	switch s {
	case "Admissible":
		return Admissible, true
	case "Stable":
		return Stable, true
	default:
		return 0, false
	}
}

// lineVerifier is the outcome of classifying one non-deletion proof line:
// where its clause-member list starts, which rule it invokes, and (for
// Admissible) the optional pinned attack index of an "iK " line.
type lineVerifier struct {
	start       int
	kind        store.VerifierKind
	attackIndex int
	ok          bool
}

// classify determines the verifier a proof line invokes, and the byte
// offset its clause-member text starts at, under the given semantics.
//
// Under Stable semantics, only a literal "i " prefix selects the
// stability verifier; any other line (including one starting with a
// digit run after "i", as Admissible syntax would use) is read as a bare
// RUP clause. Under Admissible semantics, "i " selects an unpinned
// admissibility check, "iK " (K a non-negative integer) pins the attack
// index to verify, and anything else is RUP.
func (s Semantics) classify(line string) lineVerifier {
	switch s {
	case Stable:
		if strings.HasPrefix(line, "i ") {
			return lineVerifier{start: 2, kind: store.KindStability, attackIndex: -1, ok: true}
		}
		return lineVerifier{start: 0, kind: store.KindRUP, attackIndex: -1, ok: true}
	default: // Admissible
		if !strings.HasPrefix(line, "i") {
			return lineVerifier{start: 0, kind: store.KindRUP, attackIndex: -1, ok: true}
		}
		spacePos := strings.IndexByte(line, ' ')
		if spacePos == -1 {
			return lineVerifier{}
		}
		if spacePos == 1 {
			return lineVerifier{start: 2, kind: store.KindAdmissibility, attackIndex: -1, ok: true}
		}
		digits := line[1:spacePos]
		idx, err := strconv.Atoi(digits)
		if err != nil || idx < 0 {
			return lineVerifier{}
		}
		return lineVerifier{start: spacePos + 1, kind: store.KindAdmissibility, attackIndex: idx, ok: true}
	}
}
