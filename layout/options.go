package layout

// Options tunes tree building. The zero value is ready to use.
type Options struct {
	// Data, when non-nil, is bound into attribute values before they are
	// interpreted: ${path} placeholders expand against it. See the
	// binding package for the path syntax.
	Data any
}
