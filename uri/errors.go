package uri

import "github.com/ghettovoice/urisplit/internal/errorutil"

// Error is the error type of the package.
type Error = errorutil.Error

// ErrInvalidAuthority is returned when an authority contains only one of '[' and ']'.
const ErrInvalidAuthority Error = "invalid authority"

func newInvalidAuthorityErr(authority string) error {
	return errorutil.NewWrapperError(ErrInvalidAuthority, "unbalanced brackets in %q", authority) //errtrace:skip
}
