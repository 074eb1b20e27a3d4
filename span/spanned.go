package span

// Spanned pairs a value with the Span where it was found in the source
// text. Unlike the Rust original's Deref/DerefMut, Go has no field-access
// operator overloading, so callers read s.Data directly — the same
// transparent-access idiom the rest of this codebase uses for plain value
// types (no getter indirection where no invariant needs protecting).
type Spanned[T any] struct {
	Span Span
	Data T
}

// Map transforms the wrapped value, keeping the span unchanged.
func (s Spanned[T]) Map(f func(T) T) Spanned[T] {
	return Spanned[T]{Span: s.Span, Data: f(s.Data)}
}

// MapTo transforms the wrapped value into a different type, keeping the
// span unchanged.
func MapTo[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Span: s.Span, Data: f(s.Data)}
}
