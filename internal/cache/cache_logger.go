package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern invalidates a cache pattern, logging failures
// instead of surfacing them to the request.
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete deletes cache keys, logging failures instead of surfacing them.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateLoanCache drops the cached record and every cached listing after
// a loan write.
func InvalidateLoanCache(ctx context.Context, cm *CacheManager, loanID uint) {
	SafeDelete(ctx, cm.Loan, fmt.Sprintf("id:%d", loanID))
	SafeInvalidatePattern(ctx, cm.Loan, "list:*")
}
