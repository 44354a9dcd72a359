package region

import (
	"fmt"
	"strings"

	"regionsynth/internal/common"
	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/gen"
	"regionsynth/internal/match"
)

// edit replaces lines [start, end) of the original buffer.
type edit struct {
	start int
	end   int
	lines []string
}

// planner computes the edits for one target file without touching it.
type planner struct {
	registry *gen.Registry
	decls    []decl.Declaration
	indent   string
	diags    *diagnostic.Diagnostics
}

func (p *planner) plan(lines []string) []edit {
	var edits []edit

	for i := 0; i < len(lines); {
		marker, ok := parseBegin(lines[i])
		if !ok {
			i++
			continue
		}

		end := findEnd(lines, i+1)

		g, known := p.registry.Lookup(marker.Kind)
		if !known {
			e := pruneEdit(lines, i, end)
			p.diags.AddInfo(diagnostic.CodeUnknownGeneratorKind, p.unknownKind(marker.Kind), marker.Owner, "", i+1)
			edits = append(edits, e)
			i = e.end

			continue
		}

		ctx := indentContext(lines, i, p.indent)
		candidate := reindent(g.Generate(marker.Owner, p.decls, p.diags), ctx)

		if end < 0 {
			p.diags.AddWarning(diagnostic.CodeMissingEndMarker,
				fmt.Sprintf("region %s has no end marker; inserted one", marker), marker.Owner, "", i+1)

			closing := common.LeadingWhitespace(lines[i]) + EndMarker
			edits = append(edits, edit{start: i + 1, end: i + 1, lines: append(candidate, closing)})
			i++

			continue
		}

		if !sameBlock(lines[i+1:end], candidate) {
			edits = append(edits, edit{start: i + 1, end: end, lines: candidate})
		}

		i = end + 1
	}

	return edits
}

func (p *planner) unknownKind(kind string) string {
	msg := fmt.Sprintf("removed region for unregistered kind %s", kind)
	if s, ok := match.Suggest(kind, p.registry.Kinds()); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", s)
	}

	return msg
}

// findEnd returns the index of the end marker closing a region whose body
// starts at from, or -1 when another generated begin marker or the end of
// the file comes first. Hand-written regions nest: their end markers never
// close a generated region.
func findEnd(lines []string, from int) int {
	depth := 0

	for j := from; j < len(lines); j++ {
		if _, ok := parseBegin(lines[j]); ok {
			return -1
		}

		switch {
		case isRegion(lines[j]):
			depth++
		case isEnd(lines[j]) && depth == 0:
			return j
		case isEnd(lines[j]):
			depth--
		}
	}

	return -1
}

// pruneEdit removes a region whose kind is unknown: begin marker through
// end marker, or the begin marker and the line after it when no end
// marker was found. A following region marker of any kind is never removed.
func pruneEdit(lines []string, begin, end int) edit {
	if end >= 0 {
		return edit{start: begin, end: end + 1}
	}

	stop := min(begin+2, len(lines))
	if stop > begin+1 && (isRegion(lines[begin+1]) || isEnd(lines[begin+1])) {
		stop = begin + 1
	}

	return edit{start: begin, end: stop}
}

// indentContext derives the indentation for lines inserted after line i
// from the nearest non-blank line above it: its leading whitespace, plus
// one unit when it opens a block.
func indentContext(lines []string, i int, unit string) string {
	for j := i - 1; j >= 0; j-- {
		if common.IsBlank(lines[j]) {
			continue
		}

		ctx := common.LeadingWhitespace(lines[j])
		if strings.HasSuffix(strings.TrimSpace(lines[j]), "{") {
			ctx += unit
		}

		return ctx
	}

	return ""
}

func reindent(lines []string, ctx string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		if !common.IsBlank(line) {
			out[i] = ctx + line
		}
	}

	return out
}

// sameBlock compares line by line, ignoring surrounding whitespace.
func sameBlock(current, candidate []string) bool {
	if len(current) != len(candidate) {
		return false
	}

	for i := range current {
		if strings.TrimSpace(current[i]) != strings.TrimSpace(candidate[i]) {
			return false
		}
	}

	return true
}

// apply rebuilds the buffer with edits, which must be sorted and disjoint.
func apply(lines []string, edits []edit) []string {
	out := make([]string, 0, len(lines))
	pos := 0

	for _, e := range edits {
		out = append(out, lines[pos:e.start]...)
		out = append(out, e.lines...)
		pos = e.end
	}

	return append(out, lines[pos:]...)
}
