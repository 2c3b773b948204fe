package policy

import "errors"

// ErrRoleDenied is returned when an authenticated actor lacks the privilege
// for the requested operation. It is reported distinctly from authentication
// failures and from missing resources.
var ErrRoleDenied = errors.New("access denied: invalid user role")
