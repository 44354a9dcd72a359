package region

import (
	"fmt"
	"regexp"
	"strings"
)

// EndMarker closes every region.
const EndMarker = "#pragma endregion"

var (
	beginRe = regexp.MustCompile(`(?i)^\s*#pragma\s+region\s+generated\s+(\w+)\s+(\w+)\s*$`)
	endRe   = regexp.MustCompile(`(?i)^\s*#pragma\s+endregion\b`)
	anyRe   = regexp.MustCompile(`(?i)^\s*#pragma\s+region\b`)
)

// Marker identifies one region.
type Marker struct {
	Owner string
	Kind  string
}

// String renders the begin marker line.
func (m Marker) String() string {
	return fmt.Sprintf("#pragma region generated %s %s", m.Owner, m.Kind)
}

// parseBegin recognizes a begin marker line.
func parseBegin(line string) (Marker, bool) {
	m := beginRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return Marker{}, false
	}

	return Marker{Owner: m[1], Kind: m[2]}, true
}

func isEnd(line string) bool {
	return endRe.MatchString(line)
}

// isRegion matches any begin marker, generated or hand-written.
func isRegion(line string) bool {
	return anyRe.MatchString(line)
}
