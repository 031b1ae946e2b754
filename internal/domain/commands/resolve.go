package commands

import (
	"context"
	"errors"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

// lookupResult is the outcome of one registry lookup.
type lookupResult struct {
	version entities.SemanticVersion
	err     error
}

// resolveLatest looks up the latest version of every record, one lookup per
// distinct name, with at most concurrency lookups in flight. Each lookup gets
// its own timeout. Resolved records keep the order of the input.
func resolveLatest(
	ctx context.Context,
	registry repositories.RegistryRepository,
	records []entities.DependencyRecord,
	concurrency int,
	timeout time.Duration,
) ([]entities.ResolvedDependency, []entities.SkippedDependency) {
	names, index := distinctNames(records)
	results := make([]lookupResult, len(names))

	var group errgroup.Group
	group.SetLimit(max(concurrency, 1))

	for i, name := range names {
		group.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			logger.Debugf("[%s] Looking up %q", registry.Name(), name)
			version, err := registry.LatestVersion(lookupCtx, name)
			results[i] = lookupResult{version: version, err: err}
			return nil
		})
	}
	_ = group.Wait() // lookups never fail the group, errors live in results

	resolved := make([]entities.ResolvedDependency, 0, len(records))
	var skipped []entities.SkippedDependency

	for _, record := range records {
		result := results[index[record.Name]]
		if result.err != nil {
			skipped = append(skipped, entities.SkippedDependency{
				Name:          record.Name,
				Group:         record.Group,
				DeclaredRange: record.DeclaredRange,
				Reason:        skipReasonFor(result.err),
				Err:           result.err,
			})
			continue
		}

		resolved = append(resolved, entities.ResolvedDependency{
			DependencyRecord: record,
			LatestVersion:    result.version,
		})
	}

	return resolved, skipped
}

// distinctNames returns each record name once, in first-seen order, and the
// position of every name in that list.
func distinctNames(records []entities.DependencyRecord) ([]string, map[string]int) {
	names := make([]string, 0, len(records))
	index := make(map[string]int, len(records))
	for _, record := range records {
		if _, seen := index[record.Name]; seen {
			continue
		}
		index[record.Name] = len(names)
		names = append(names, record.Name)
	}
	return names, index
}

// skipReasonFor maps a lookup error to the reason shown to the user.
// Anything that is not a known answer from the registry counts as unavailable.
func skipReasonFor(err error) entities.SkipReason {
	switch {
	case errors.Is(err, entities.ErrPackageNotFound):
		return entities.SkipPackageNotFound
	case errors.Is(err, entities.ErrMalformedVersion):
		return entities.SkipMalformedVersion
	default:
		return entities.SkipRegistryUnavailable
	}
}
