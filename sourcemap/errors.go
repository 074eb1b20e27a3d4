package sourcemap

import "errors"

// ErrOutOfRange is returned when a BytePos does not fall within any
// registered SourceFile.
var ErrOutOfRange = errors.New("sourcemap: position out of range")

// ErrSpanCrossesFiles is returned when a Span's lo and hi fall in different
// SourceFiles, so no single snippet can represent it.
var ErrSpanCrossesFiles = errors.New("sourcemap: span crosses file boundary")

// ErrNameCollision is returned by AddFile when name already identifies a
// different file's content.
var ErrNameCollision = errors.New("sourcemap: file name already registered with different content")
