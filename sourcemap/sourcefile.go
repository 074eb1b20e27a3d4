// Package sourcemap registers source text under a single, global,
// monotonically increasing BytePos axis and answers the position
// conversions the rest of the lexical core needs: pos -> file, pos ->
// (line, col), and span -> source snippet.
package sourcemap

import (
	"github.com/malik672/solar-lexcore/span"
)

// SourceFile is an immutable record of one registered file's text: its
// name (or a synthetic label), its content, the absolute BytePos its
// content starts at within the source map's global axis, and a
// precomputed table of line-start offsets (relative to the file, ascending,
// always beginning with 0). A SourceFile is never mutated after
// registration and lives as long as its owning SourceMap.
type SourceFile struct {
	name  string
	src   string
	start span.BytePos

	// lineStarts[i] is the byte offset, relative to src, where line i+1
	// begins. lineStarts[0] is always 0.
	lineStarts []uint32
}

func newSourceFile(name, src string, start span.BytePos) *SourceFile {
	return &SourceFile{
		name:       name,
		src:        src,
		start:      start,
		lineStarts: computeLineStarts(src),
	}
}

// Name returns the file's registered name or synthetic label.
func (f *SourceFile) Name() string { return f.name }

// Text returns the file's full source text.
func (f *SourceFile) Text() string { return f.src }

// Start returns the absolute BytePos at which this file's content begins.
func (f *SourceFile) Start() span.BytePos { return f.start }

// End returns the absolute BytePos one past this file's last byte.
func (f *SourceFile) End() span.BytePos {
	return span.BytePos(f.start.ToUint32() + uint32(len(f.src)))
}

// Contains reports whether pos falls within [Start, End].
func (f *SourceFile) Contains(pos span.BytePos) bool {
	return pos.ToUint32() >= f.start.ToUint32() && pos.ToUint32() <= f.End().ToUint32()
}

// LineCount returns the number of lines in the file (always >= 1, even for
// empty content).
func (f *SourceFile) LineCount() int { return len(f.lineStarts) }

// lineOf returns the 0-based line index containing the file-relative byte
// offset rel, via binary search over lineStarts.
func (f *SourceFile) lineOf(rel uint32) int {
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= rel {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineCol converts an absolute BytePos known to fall within this file into
// a 1-based (line, column) pair. Column is a byte offset within the line,
// 1-based; callers needing a rune-based column should decode the returned
// line text themselves.
func (f *SourceFile) LineCol(pos span.BytePos) (line, col int) {
	rel := pos.ToUint32() - f.start.ToUint32()
	idx := f.lineOf(rel)
	return idx + 1, int(rel-f.lineStarts[idx]) + 1
}

// LineText returns the text of the given 1-based line, excluding its
// trailing newline.
func (f *SourceFile) LineText(line int) (string, bool) {
	if line < 1 || line > len(f.lineStarts) {
		return "", false
	}
	start := f.lineStarts[line-1]
	end := uint32(len(f.src))
	if line < len(f.lineStarts) {
		end = f.lineStarts[line]
	}
	text := f.src[start:end]
	for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
	}
	return text, true
}

// computeLineStarts precomputes the byte offset of each line start,
// treating \r\n as a single line break like a bare \n or \r.
func computeLineStarts(src string) []uint32 {
	starts := []uint32{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			starts = append(starts, uint32(i+1))
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				starts = append(starts, uint32(i+2))
				i++
			} else {
				starts = append(starts, uint32(i+1))
			}
		}
	}
	return starts
}
