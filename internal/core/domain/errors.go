package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrUserInactive = errors.New("user is not active")
