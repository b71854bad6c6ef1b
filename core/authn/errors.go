package authn

import "errors"

// ErrNoSession indicates the request carries no valid authentication session.
var ErrNoSession = errors.New("authn: no valid session")
