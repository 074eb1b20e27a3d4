package sourcemap

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/malik672/solar-lexcore/span"
)

// SourceMap is an ordered collection of SourceFiles sharing one global,
// monotonically increasing BytePos axis: file i+1's range starts exactly
// where file i's ends, so every registered file occupies a disjoint,
// concatenation-contiguous slice of the axis. Once added, a file's range
// is frozen — later registrations only ever extend the axis.
//
// Reads (Lookup, LineCol, SpanToSnippet, ...) are safe for concurrent use.
// Registration (AddFile) is serialized under a single write lock; expensive
// work (line-start precomputation, NFC normalization) happens before the
// lock is taken, matching the teacher's registry.
type SourceMap struct {
	mu        sync.RWMutex
	files     []*SourceFile
	byName    map[string]*SourceFile
	nextStart span.BytePos
}

// New creates an empty SourceMap.
func New() *SourceMap {
	return &SourceMap{byName: make(map[string]*SourceFile)}
}

// AddFile registers src under name, normalizing name to NFC so that file
// identity does not depend on which normalization form the caller used for
// the same logical path. Returns the new SourceFile's absolute start
// BytePos. Re-registering the same name with identical content is
// idempotent; re-registering with different content returns
// ErrNameCollision.
func (m *SourceMap) AddFile(name, src string) (span.BytePos, error) {
	normName := norm.NFC.String(name)
	file := newSourceFile(normName, src, 0)

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byName[normName]; ok {
		if existing.src == src {
			return existing.start, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrNameCollision, normName)
	}

	file.start = m.nextStart
	m.files = append(m.files, file)
	m.byName[normName] = file
	m.nextStart = span.BytePos(m.nextStart.ToUint32() + uint32(len(src)))

	return file.start, nil
}

// Lookup finds the SourceFile containing pos via binary search over file
// start offsets, O(log N) in the number of registered files.
func (m *SourceMap) Lookup(pos span.BytePos) (*SourceFile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := sort.Search(len(m.files), func(i int) bool {
		return m.files[i].start.ToUint32() > pos.ToUint32()
	})
	if i == 0 {
		return nil, false
	}
	f := m.files[i-1]
	if !f.Contains(pos) {
		return nil, false
	}
	return f, true
}

// FileByName returns the SourceFile registered under name, after the same
// NFC normalization AddFile applies.
func (m *SourceMap) FileByName(name string) (*SourceFile, bool) {
	normName := norm.NFC.String(name)
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.byName[normName]
	return f, ok
}

// LineCol converts pos to a 1-based (line, column) pair, O(log lines)
// within the owning file once the file itself has been found.
func (m *SourceMap) LineCol(pos span.BytePos) (line, col int, err error) {
	f, ok := m.Lookup(pos)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrOutOfRange, pos.ToUint32())
	}
	line, col = f.LineCol(pos)
	return line, col, nil
}

// SpanToSnippet returns the exact source text covered by s. Errors if s's
// endpoints fall in different files or either endpoint is out of range.
func (m *SourceMap) SpanToSnippet(s span.Span) (string, error) {
	lo, ok := m.Lookup(s.Lo)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, s.Lo.ToUint32())
	}
	// hi == file end is valid (one-past-the-last-byte), even though Lookup
	// attributes that position to the next file when one follows.
	if s.Hi.ToUint32() > lo.End().ToUint32() {
		if _, ok := m.Lookup(s.Hi); !ok {
			return "", fmt.Errorf("%w: %d", ErrOutOfRange, s.Hi.ToUint32())
		}
		return "", ErrSpanCrossesFiles
	}
	relLo := s.Lo.ToUint32() - lo.start.ToUint32()
	relHi := s.Hi.ToUint32() - lo.start.ToUint32()
	return lo.src[relLo:relHi], nil
}

// SpanToDiagnosticString renders s as "name:line:col-line:col", or
// "Span(lo..hi)" if either endpoint cannot be resolved. It implements
// span.DebugFormatter so callers can wire a SourceMap in with
// span.SetActiveFormatter.
func (m *SourceMap) SpanToDiagnosticString(s span.Span) string {
	loFile, loOK := m.Lookup(s.Lo)
	hiFile, hiOK := m.Lookup(s.Hi)
	if !loOK || !hiOK {
		return fmt.Sprintf("Span(%d..%d)", s.Lo.ToUint32(), s.Hi.ToUint32())
	}
	loLine, loCol := loFile.LineCol(s.Lo)
	hiLine, hiCol := hiFile.LineCol(s.Hi)
	return fmt.Sprintf("%s:%d:%d-%d:%d", loFile.Name(), loLine, loCol, hiLine, hiCol)
}

// Files returns the registered SourceFiles in registration order. The
// returned slice is a defensive copy.
func (m *SourceMap) Files() []*SourceFile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*SourceFile, len(m.files))
	copy(out, m.files)
	return out
}
