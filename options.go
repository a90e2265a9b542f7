package mathstuff

// Option configures the function map returned by [FuncMap].
//
// Example:
//
//	// Register under prefixed names to avoid collisions with the host's
//	// own functions:
//	tmpl.Funcs(mathstuff.FuncMap(mathstuff.WithNamePrefix("math_")))
type Option func(*funcMapOptions)

// funcMapOptions holds optional configuration for FuncMap construction.
type funcMapOptions struct {
	prefix string
	bytes  ByteFormatter
}

func defaultFuncMapOptions() funcMapOptions {
	return funcMapOptions{
		bytes: defaultByteFormatter,
	}
}

// WithNamePrefix registers every filter under prefix+name. The prefix must
// keep the names valid template identifiers.
func WithNamePrefix(prefix string) Option {
	return func(o *funcMapOptions) {
		o.prefix = prefix
	}
}

// WithByteFormatter installs a custom byte/unit utility behind the
// human_readable and human_to_bytes filters. Use this for dependency
// injection when the host has its own size conventions.
//
// Example:
//
//	m := mathstuff.FuncMap(mathstuff.WithByteFormatter(myFormatter))
func WithByteFormatter(f ByteFormatter) Option {
	return func(o *funcMapOptions) {
		if f != nil {
			o.bytes = f
		}
	}
}
