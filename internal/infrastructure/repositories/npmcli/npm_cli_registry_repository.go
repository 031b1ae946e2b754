// Package npmcli looks up latest versions by shelling out to "npm view".
package npmcli

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

const (
	// Name is the registry type selecting this implementation.
	Name = "npm-cli"

	notFoundCode = "E404"
)

// CommandRunner runs a command and returns its stdout and stderr.
type CommandRunner func(ctx context.Context, name string, args ...string) (string, string, error)

// RegistryRepository asks the local npm installation for the latest version.
type RegistryRepository struct {
	binary      string
	registryURL string
	token       string
	run         CommandRunner
}

// NewRegistryRepository creates a registry backed by the npm CLI found on PATH.
func NewRegistryRepository(cfg entities.RegistryConfig) (domainRepos.RegistryRepository, error) {
	binary, err := exec.LookPath("npm")
	if err != nil {
		return nil, fmt.Errorf("npm executable not found: %w", err)
	}
	return NewRegistryRepositoryWithRunner(binary, cfg, runCommand), nil
}

// NewRegistryRepositoryWithRunner creates a registry that runs npm through runner.
func NewRegistryRepositoryWithRunner(
	binary string,
	cfg entities.RegistryConfig,
	runner CommandRunner,
) *RegistryRepository {
	return &RegistryRepository{
		binary:      binary,
		registryURL: cfg.URL,
		token:       cfg.Token,
		run:         runner,
	}
}

func (r *RegistryRepository) Name() string { return Name }

// LatestVersion runs `npm view <name> version` and parses its output.
func (r *RegistryRepository) LatestVersion(
	ctx context.Context,
	name string,
) (entities.SemanticVersion, error) {
	stdout, stderr, err := r.run(ctx, r.binary, r.buildArgs(name)...)
	if err != nil {
		if strings.Contains(stderr, notFoundCode) {
			return entities.SemanticVersion{}, fmt.Errorf("%w: %s", entities.ErrPackageNotFound, name)
		}
		logger.Debugf("[npm-cli] npm view %s failed: %s", name, strings.TrimSpace(stderr))
		return entities.SemanticVersion{}, fmt.Errorf("%w: npm view %s: %w", entities.ErrRegistryUnavailable, name, err)
	}

	version := strings.TrimSpace(stdout)
	if version == "" {
		return entities.SemanticVersion{}, fmt.Errorf("%w: %s has no published version", entities.ErrPackageNotFound, name)
	}

	return entities.ParseVersion(version)
}

func (r *RegistryRepository) buildArgs(name string) []string {
	args := []string{"view", name, "version"}
	if r.registryURL != "" {
		args = append(args, "--registry", r.registryURL)
	}
	if r.token != "" {
		args = append(args, fmt.Sprintf("--%s:_authToken=%s", registryScope(r.registryURL), r.token))
	}
	return args
}

// registryScope returns the "//host/path/" key npm uses for per-registry auth.
func registryScope(registryURL string) string {
	if registryURL == "" {
		return "//registry.npmjs.org/"
	}
	parsed, err := url.Parse(registryURL)
	if err != nil || parsed.Host == "" {
		return "//registry.npmjs.org/"
	}
	return "//" + parsed.Host + strings.TrimSuffix(parsed.Path, "/") + "/"
}

func runCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: %w", err, ctx.Err())
	}
	return stdout.String(), stderr.String(), err
}
