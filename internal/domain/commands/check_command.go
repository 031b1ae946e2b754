package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/skewcheck/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) (*entities.Report, error)
}

// CheckOptions holds runtime options for a single check.
type CheckOptions struct {
	Path    string // Manifest file or the directory holding it
	Verbose bool
}

// CheckCommand orchestrates one staleness check:
// read manifest -> extract dependencies -> resolve latest versions -> build report.
type CheckCommand struct {
	manifestRepository repositories.ManifestRepository
	registryFactory    *infraRepos.RegistryFactory
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	manifestRepository repositories.ManifestRepository,
	registryFactory *infraRepos.RegistryFactory,
) *CheckCommand {
	return &CheckCommand{
		manifestRepository: manifestRepository,
		registryFactory:    registryFactory,
	}
}

// Execute runs the check. Only a manifest that cannot be read, or whose
// dependency groups are not objects, makes it fail; per-dependency problems
// end up in Report.Skipped.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) (*entities.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	bumpFilter, err := settings.BumpFilter()
	if err != nil {
		return nil, err
	}

	registry, err := it.registryFactory.Get(settings.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize registry: %w", err)
	}

	path := opts.Path
	if path == "" {
		path = settings.Manifest
	}

	manifest, err := it.manifestRepository.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	logger.Infof("Checking %s using the %q registry", manifest.Path, registry.Name())

	runtimeRecords, skipped := entities.ExtractDependencies(
		manifest.Runtime, entities.GroupRuntime, settings.Tilde,
	)
	records := runtimeRecords

	if !settings.SkipDev {
		devRecords, devSkipped := entities.ExtractDependencies(
			manifest.Development, entities.GroupDevelopment, settings.Tilde,
		)
		records = append(records, devRecords...)
		skipped = append(skipped, devSkipped...)
	}

	floating, pinned := entities.PartitionPinned(records)
	logger.Infof(
		"Found %d dependencies: %d to check, %d pinned, %d unparsable",
		len(records)+len(skipped), len(floating), len(pinned), len(skipped),
	)

	resolved, lookupSkipped := resolveLatest(
		ctx, registry, floating, settings.Concurrency, settings.Registry.Timeout,
	)
	skipped = append(skipped, lookupSkipped...)

	for _, skip := range skipped {
		logger.Warnf("Skipped %s (%s): %v", displayName(skip), skip.Group, skip.Err)
	}

	report := entities.BuildReport(resolved, skipped, len(pinned))
	report.FilterByBump(bumpFilter)

	logger.Infof(
		"Check complete: %d checked, %d outdated, %d skipped",
		report.Checked, len(report.Findings), len(report.Skipped),
	)
	return report, nil
}

func displayName(skip entities.SkippedDependency) string {
	if skip.Name == "" {
		return "<unnamed>"
	}
	return skip.Name
}
