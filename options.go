package wordbloom

type options struct {
	hash HashFunc
}

// Option configures filter construction.
type Option func(*options)

// WithHashFunc replaces the hash primitive used to derive bit positions.
//
// If nil is passed, Murmur3 is used.
func WithHashFunc(fn HashFunc) Option {
	return func(o *options) {
		if fn == nil {
			fn = Murmur3
		}
		o.hash = fn
	}
}
