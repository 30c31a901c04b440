package escape

import "github.com/ghettovoice/urisplit/internal/errorutil"

// Error is the error type of the package.
type Error = errorutil.Error

const (
	// ErrUnsupportedArgument is returned for option combinations the codec cannot honor,
	// such as an encoding given together with a byte slice input.
	ErrUnsupportedArgument Error = "unsupported argument"
	// ErrUnknownEncoding is returned when the encoding name is not registered.
	ErrUnknownEncoding Error = "unknown encoding"
	// ErrEncode is returned under [Strict] when text cannot be represented in the encoding.
	ErrEncode Error = "encode failed"
	// ErrDecode is returned under [Strict] when decoded bytes are not valid in the encoding.
	ErrDecode Error = "decode failed"
)

func newUnsupportedArgErr(args ...any) error {
	return errorutil.NewWrapperError(ErrUnsupportedArgument, args...) //errtrace:skip
}

func newUnknownEncodingErr(name string) error {
	return errorutil.NewWrapperError(ErrUnknownEncoding, "%q", name) //errtrace:skip
}

func newEncodeErr(enc string, pos int, r rune) error {
	return errorutil.NewWrapperError(ErrEncode, "%s codec can't encode %q in position %d", enc, r, pos) //errtrace:skip
}

func newDecodeErr(enc string, pos int, b byte) error {
	return errorutil.NewWrapperError(ErrDecode, "%s codec can't decode byte 0x%02x in position %d", enc, b, pos) //errtrace:skip
}
