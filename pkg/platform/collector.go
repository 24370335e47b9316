package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/retry"
	"github.com/sgaunet/pr-report/pkg/mergeability"
	"github.com/sgaunet/pr-report/pkg/report"
)

// Failure records a project or repository that was skipped.
type Failure struct {
	Project string
	// Repository is empty when the project listing itself failed.
	Repository string
	Err        error
}

// Result is the outcome of a collection run.
type Result struct {
	Rows     []report.Row
	Failures []Failure
}

// Collector walks projects, repositories and pull requests of a provider in
// order, one request at a time.
type Collector struct {
	provider Provider
	resolver *mergeability.Resolver
	log      *bullets.Logger
}

// NewCollector creates a collector. When provider implements
// mergeability.Fetcher each row's readiness is resolved with policy,
// otherwise it stays Unknown.
func NewCollector(provider Provider, policy retry.Policy, log *bullets.Logger) *Collector {
	if log == nil {
		log = logger.NoLogger()
	}
	c := &Collector{provider: provider, log: log}
	if fetcher, ok := provider.(mergeability.Fetcher); ok {
		c.resolver = mergeability.NewResolver(fetcher, policy)
		c.resolver.SetLogger(log)
	}
	return c
}

// Collect returns the rows of every open pull request of projects.
//
// A project or repository that fails is logged, recorded in
// Result.Failures and skipped. Rejected credentials stop the run and are
// returned as an error wrapping [ErrUnauthorized], together with the rows
// collected so far. A cancelled context also stops the run.
func (c *Collector) Collect(ctx context.Context, projects []string) (*Result, error) {
	res := &Result{}
	name := c.provider.PlatformName()

	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("collection interrupted: %w", err)
		}

		repos, err := c.provider.ListRepositories(ctx, project)
		if err != nil {
			if stop := c.fail(res, project, "", err); stop != nil {
				return res, stop
			}
			continue
		}
		c.log.Info(fmt.Sprintf("%s %s: %d repositories", name, project, len(repos)))

		for _, repo := range repos {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("collection interrupted: %w", err)
			}

			prs, err := c.provider.ListOpenPullRequests(ctx, repo)
			if err != nil {
				if stop := c.fail(res, project, repo.Name, err); stop != nil {
					return res, stop
				}
				continue
			}
			if len(prs) > 0 {
				c.log.Debug(fmt.Sprintf("%s: %d open pull request(s)", repo.FullName(), len(prs)))
			}

			for _, pr := range prs {
				row := Normalize(pr)
				if c.resolver != nil {
					row.ReadyToMerge = c.resolver.Resolve(ctx, pr.Ref())
				}
				res.Rows = append(res.Rows, row)
			}
		}
	}

	c.log.Info(fmt.Sprintf("%s: %d open pull request(s) collected", name, len(res.Rows)))
	if len(res.Failures) > 0 {
		c.log.Warnf("%s: %d project(s) or repositories skipped", name, len(res.Failures))
	}
	return res, nil
}

// fail records a skipped item. It returns a non-nil error when the run must stop.
func (c *Collector) fail(res *Result, project, repo string, err error) error {
	if errors.Is(err, ErrUnauthorized) {
		return fmt.Errorf("%s: %w", c.provider.PlatformName(), err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("collection interrupted: %w", err)
	}

	wrapped := fmt.Errorf("%w: %w", ErrTransientNetwork, err)
	res.Failures = append(res.Failures, Failure{Project: project, Repository: repo, Err: wrapped})

	if repo == "" {
		c.log.Error(fmt.Sprintf("Error fetching repositories for project %s: %v", project, err))
	} else {
		c.log.Error(fmt.Sprintf("Error fetching pull requests for %s/%s: %v", project, repo, err))
	}
	return nil
}
