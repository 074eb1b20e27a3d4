package session

import "errors"

// ErrPoolClosed names a pool operation attempted after its pool was closed.
// The scopes in this package have no Close operation, and no function in
// this package returns it.
var ErrPoolClosed = errors.New("session: worker pool closed")
