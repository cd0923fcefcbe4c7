// Package remote fetches holiday data from the canada-holidays.ca API and
// normalizes it into the engine's Holiday shape. The fetch outcome is an
// explicit result value: the resolver branches on it rather than on errors.
package remote

import (
	"context"

	"github.com/yzho285/public-holidays-display/internal/model"
)

// FetchResult is the outcome of a whole-range remote attempt. Partial data is
// never exposed: either every requested year succeeded and Holidays carries
// the combined records, or Failed is set with the first failure's Reason.
type FetchResult struct {
	Holidays []model.Holiday
	Failed   bool
	Reason   error
}

// Success wraps a complete set of normalized records.
func Success(holidays []model.Holiday) FetchResult {
	return FetchResult{Holidays: holidays}
}

// Failure marks the whole attempt as failed.
func Failure(reason error) FetchResult {
	return FetchResult{Failed: true, Reason: reason}
}

// Fetcher is the injected remote capability: fetch every listed year's
// holidays for one province. Implementations must bound each request's wait
// and report any single year's failure as a whole-attempt failure.
type Fetcher interface {
	FetchYears(ctx context.Context, provinceCode string, years []int) FetchResult
}
