// Package app implements the application layer for compdb: it assembles
// the compilation database from the bazel action graph.
package app

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/compdb/internal/engine/rewrite"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates the pipeline: discover roots, query the action graph,
// rewrite every action, synthesize template entries, write the database.
type App struct {
	finder       ports.WorkspaceFinder
	configLoader ports.ConfigLoader
	querier      ports.ActionQuerier
	engine       *rewrite.Engine
	writer       ports.DatabaseWriter
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	finder ports.WorkspaceFinder,
	configLoader ports.ConfigLoader,
	querier ports.ActionQuerier,
	engine *rewrite.Engine,
	writer ports.DatabaseWriter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		finder:       finder,
		configLoader: configLoader,
		querier:      querier,
		engine:       engine,
		writer:       writer,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Generate runs the full pipeline for one invocation. The args are the raw
// command line after the subcommand: leading dash arguments are bazel
// flags, the rest are target patterns. The database is only written after
// every stage succeeded; individual malformed actions are skipped with a
// warning and do not fail the run.
func (a *App) Generate(ctx context.Context, args []string) (domain.WriteSummary, error) {
	roots, err := a.discoverRoots(ctx)
	if err != nil {
		return domain.WriteSummary{}, err
	}

	flags, patterns, err := a.mergeInvocation(roots.Workspace, args)
	if err != nil {
		return domain.WriteSummary{}, err
	}

	actions, err := a.queryActions(ctx, roots.Workspace, flags, domain.QueryExpression(patterns))
	if err != nil {
		return domain.WriteSummary{}, err
	}

	entries, err := a.rewriteActions(ctx, roots, actions)
	if err != nil {
		return domain.WriteSummary{}, err
	}

	entries = append(entries, a.synthesizeEntries(ctx, entries)...)

	return a.writeDatabase(ctx, roots.Workspace, entries)
}

func (a *App) discoverRoots(ctx context.Context) (domain.Roots, error) {
	ctx, vertex := a.telemetry.Record(ctx, "discover workspace roots")
	roots, err := a.finder.Discover(ctx)
	vertex.Complete(err)
	if err != nil {
		return domain.Roots{}, zerr.Wrap(err, "workspace discovery failed")
	}
	return roots, nil
}

// mergeInvocation combines the workspace defaults from compdb.yaml with the
// command line. Configured flags come first so the command line can
// override them; configured target patterns only apply when the invocation
// names none.
func (a *App) mergeInvocation(workspace string, args []string) (flags, patterns []string, err error) {
	cfg, err := a.configLoader.Load(workspace)
	if err != nil {
		return nil, nil, err
	}

	flags, patterns = domain.SplitInvocation(args)
	flags = append(slices.Clone(cfg.Flags), flags...)
	if len(patterns) == 0 {
		patterns = cfg.Targets
	}
	return flags, patterns, nil
}

func (a *App) queryActions(ctx context.Context, workspace string, flags []string, expression string) ([]domain.BuildAction, error) {
	ctx, vertex := a.telemetry.Record(ctx, "query action graph")
	actions, err := a.querier.Query(ctx, workspace, flags, expression)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("action graph query returned %d compile actions", len(actions)))
	return actions, nil
}

// rewriteActions converts every action into an entry. Actions are
// independent, so the rewrites fan out across CPUs; results land in an
// index-addressed slice so the merge below follows the original action
// order, never completion order.
func (a *App) rewriteActions(ctx context.Context, roots domain.Roots, actions []domain.BuildAction) ([]domain.CompilationEntry, error) {
	_, vertex := a.telemetry.Record(ctx, "rewrite compile actions")

	results := make([]*domain.CompilationEntry, len(actions))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, action := range actions {
		g.Go(func() error {
			entry, err := a.engine.Rewrite(roots, action)
			if err != nil {
				// Malformed actions are skipped, not fatal: the rest of
				// the batch still yields a usable database.
				a.logger.Warn(fmt.Sprintf("skipping action %s: %v", action.ID, err))
				return nil
			}
			results[i] = &entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		vertex.Complete(err)
		return nil, err
	}
	vertex.Complete(nil)

	// Index by file path in action order. A duplicate file keeps its first
	// slot but takes the later entry's content.
	slots := make(map[string]int, len(results))
	entries := make([]domain.CompilationEntry, 0, len(results))
	for _, entry := range results {
		if entry == nil {
			continue
		}
		if slot, seen := slots[entry.File]; seen {
			entries[slot] = *entry
			continue
		}
		slots[entry.File] = len(entries)
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (a *App) synthesizeEntries(ctx context.Context, entries []domain.CompilationEntry) []domain.CompilationEntry {
	_, vertex := a.telemetry.Record(ctx, "synthesize template entries")
	synthesized := a.engine.Synthesize(entries)
	vertex.Complete(nil)

	if len(synthesized) > 0 {
		a.logger.Info(fmt.Sprintf("synthesized %d template implementation entries", len(synthesized)))
	}
	return synthesized
}

func (a *App) writeDatabase(ctx context.Context, workspace string, entries []domain.CompilationEntry) (domain.WriteSummary, error) {
	_, vertex := a.telemetry.Record(ctx, "write compilation database")
	summary, err := a.writer.Write(workspace, entries)
	if err != nil {
		vertex.Complete(err)
		return domain.WriteSummary{}, err
	}

	if summary.Unchanged {
		vertex.Cached()
		a.logger.Info(fmt.Sprintf("%s is up to date (%d entries, digest %016x)", summary.Path, summary.Entries, summary.Digest))
	}
	vertex.Complete(nil)
	return summary, nil
}
