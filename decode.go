package keyshape

// Background has no serialized form: a key only exists as built by New and
// its setters. Every decoding entry point panics.

const errDecodeUnsupported = "keyshape: decoding a Background is not supported"

// UnmarshalJSON panics: Background cannot be decoded.
func (b *Background) UnmarshalJSON([]byte) error {
	panic(errDecodeUnsupported)
}

// UnmarshalText panics: Background cannot be decoded.
func (b *Background) UnmarshalText([]byte) error {
	panic(errDecodeUnsupported)
}

// UnmarshalBinary panics: Background cannot be decoded.
func (b *Background) UnmarshalBinary([]byte) error {
	panic(errDecodeUnsupported)
}

// GobDecode panics: Background cannot be decoded.
func (b *Background) GobDecode([]byte) error {
	panic(errDecodeUnsupported)
}
