package runtime

import (
	"context"

	"github.com/LerianStudio/lib-chek/chek/log"
)

// SafeGo runs fn in a new goroutine that recovers assertion failures
// according to policy. Other panics still crash the process.
func SafeGo(logger log.Logger, name string, policy PanicPolicy, fn func()) {
	go func() {
		defer RecoverWithPolicy(logger, name, policy)

		fn()
	}()
}

// SafeGoWithContext is SafeGo with metrics, tracing and error reporting.
func SafeGoWithContext(
	ctx context.Context,
	logger log.Logger,
	component, name string,
	policy PanicPolicy,
	fn func(context.Context),
) {
	go func() {
		defer RecoverWithPolicyAndContext(ctx, logger, component, name, policy)

		fn(ctx)
	}()
}
