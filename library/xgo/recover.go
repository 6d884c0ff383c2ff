package xgo

import (
	"runtime/debug"

	"github.com/go-kratos/kratos/v2/log"
)

// RecoverFromError must be deferred directly. It logs a panic with its stack
// and hands the value to cb.
func RecoverFromError(cb func(e any)) {
	e := recover()
	if e == nil {
		return
	}
	log.Errorw("msg", "panic recovered", "panic", e, "stack", string(debug.Stack()))
	if cb != nil {
		cb(e)
	}
}
