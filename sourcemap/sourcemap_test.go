package sourcemap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malik672/solar-lexcore/span"
)

func TestAddFileAssignsContiguousRanges(t *testing.T) {
	m := New()
	start1, err := m.AddFile("a.sol", "abc")
	require.NoError(t, err)
	start2, err := m.AddFile("b.sol", "defgh")
	require.NoError(t, err)

	assert.Equal(t, span.BytePos(0), start1)
	assert.Equal(t, span.BytePos(3), start2)

	fa, ok := m.FileByName("a.sol")
	require.True(t, ok)
	assert.Equal(t, span.BytePos(3), fa.End())

	fb, ok := m.FileByName("b.sol")
	require.True(t, ok)
	assert.Equal(t, span.BytePos(3), fb.Start())
	assert.Equal(t, span.BytePos(8), fb.End())
}

func TestAddFileIdempotentForIdenticalContent(t *testing.T) {
	m := New()
	start1, err := m.AddFile("a.sol", "abc")
	require.NoError(t, err)
	start2, err := m.AddFile("a.sol", "abc")
	require.NoError(t, err)
	assert.Equal(t, start1, start2)
	assert.Len(t, m.Files(), 1)
}

func TestAddFileCollisionOnDifferentContent(t *testing.T) {
	m := New()
	_, err := m.AddFile("a.sol", "abc")
	require.NoError(t, err)
	_, err = m.AddFile("a.sol", "xyz")
	require.ErrorIs(t, err, ErrNameCollision)
}

func TestLookupFindsOwningFile(t *testing.T) {
	m := New()
	m.AddFile("a.sol", "abc")
	m.AddFile("b.sol", "defgh")

	f, ok := m.Lookup(span.BytePos(4))
	require.True(t, ok)
	assert.Equal(t, "b.sol", f.Name())

	_, ok = m.Lookup(span.BytePos(100))
	assert.False(t, ok)
}

func TestLineColMultiLineFile(t *testing.T) {
	m := New()
	m.AddFile("a.sol", "abc\ndef\nghi")

	line, col, err := m.LineCol(span.BytePos(0))
	require.NoError(t, err)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col, err = m.LineCol(span.BytePos(4))
	require.NoError(t, err)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col, err = m.LineCol(span.BytePos(9))
	require.NoError(t, err)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}

func TestSpanToSnippet(t *testing.T) {
	m := New()
	m.AddFile("a.sol", "hello world")

	snippet, err := m.SpanToSnippet(span.New(0, 5))
	require.NoError(t, err)
	assert.Equal(t, "hello", snippet)
}

func TestSpanToSnippetCrossingFilesErrors(t *testing.T) {
	m := New()
	m.AddFile("a.sol", "abc")
	m.AddFile("b.sol", "def")

	_, err := m.SpanToSnippet(span.New(2, 4))
	assert.ErrorIs(t, err, ErrSpanCrossesFiles)
}

func TestSpanToDiagnosticStringFormatsFileLineCol(t *testing.T) {
	m := New()
	m.AddFile("a.sol", "abc\ndef")

	s := m.SpanToDiagnosticString(span.New(4, 7))
	assert.Equal(t, "a.sol:2:1-2:4", s)
}

func TestSpanToDiagnosticStringFallsBackOutOfRange(t *testing.T) {
	m := New()
	m.AddFile("a.sol", "abc")

	s := m.SpanToDiagnosticString(span.New(0, 100))
	assert.Equal(t, "Span(0..100)", s)
}

func TestNameNormalizedToNFC(t *testing.T) {
	m := New()
	// nfd spells the e-with-acute as "e" + U+0301 (combining acute accent);
	// nfc spells it as the single precomposed U+00E9 code point. Both must
	// resolve to the same registered file.
	nfd := "cafe\u0301.sol"
	nfc := "caf\u00e9.sol"

	_, err := m.AddFile(nfd, "abc")
	require.NoError(t, err)

	f, ok := m.FileByName(nfc)
	require.True(t, ok)
	assert.Equal(t, nfc, f.Name())
}

func TestConcurrentReadsDuringRegistration(t *testing.T) {
	m := New()
	m.AddFile("seed.sol", "0123456789")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Lookup(span.BytePos(3))
			_, _, _ = m.LineCol(span.BytePos(3))
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.AddFile("extra.sol", "xyz")
			_ = i
		}(i)
	}
	wg.Wait()
}

func TestLineTextStripsTrailingNewline(t *testing.T) {
	f := newSourceFile("a.sol", "line one\r\nline two\n", 0)
	text, ok := f.LineText(1)
	require.True(t, ok)
	assert.Equal(t, "line one", text)

	text, ok = f.LineText(2)
	require.True(t, ok)
	assert.Equal(t, "line two", text)

	_, ok = f.LineText(3)
	assert.False(t, ok)
}
