package authz

import "errors"

// ErrNotFound indicates no admin record exists for the given user.
var ErrNotFound = errors.New("authz: admin record not found")
