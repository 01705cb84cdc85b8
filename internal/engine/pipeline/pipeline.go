// Package pipeline runs one invocation: fingerprint, lookup and verify,
// then either execute the entry or build, execute and publish.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports"
)

// Outcome tells which path an invocation took.
type Outcome string

const (
	// OutcomeHit means a verified cache entry was executed.
	OutcomeHit Outcome = "hit"
	// OutcomeBuilt means the program was compiled and executed.
	OutcomeBuilt Outcome = "built"
	// OutcomeCompileFailed means the compiler rejected the program.
	OutcomeCompileFailed Outcome = "compile-failed"
	// OutcomeAssembly means assembly was printed and nothing ran.
	OutcomeAssembly Outcome = "assembly"
)

// Result describes a finished invocation.
type Result struct {
	Outcome  Outcome
	ExitCode int
	// Fingerprint is only meaningful when Cached is true.
	Fingerprint domain.Fingerprint
	Cached      bool
	// Published is set when this invocation's build became the cache entry.
	Published bool
	// Workspace is the retained workspace when the user asked to keep it.
	Workspace string
}

// Pipeline wires the collaborators of one invocation together.
type Pipeline struct {
	fingerprinter ports.Fingerprinter
	store         ports.CacheStore
	evictor       ports.Evictor
	sandbox       ports.Sandbox
	assembler     ports.SourceAssembler
	compiler      ports.Compiler
	executor      ports.Executor
	tracer        ports.Tracer
	logger        ports.Logger
}

// New creates a new Pipeline.
func New(
	fingerprinter ports.Fingerprinter,
	store ports.CacheStore,
	evictor ports.Evictor,
	sandbox ports.Sandbox,
	assembler ports.SourceAssembler,
	compiler ports.Compiler,
	executor ports.Executor,
	tracer ports.Tracer,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		fingerprinter: fingerprinter,
		store:         store,
		evictor:       evictor,
		sandbox:       sandbox,
		assembler:     assembler,
		compiler:      compiler,
		executor:      executor,
		tracer:        tracer,
		logger:        logger,
	}
}

// Run executes inv under cfg. The returned error is set only for fatal
// conditions; compiler and program failures are reported in the Result.
func (p *Pipeline) Run(ctx context.Context, cfg domain.Config, inv domain.Invocation) (Result, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline")
	defer span.End()

	spec := p.assembler.Spec(cfg, inv)
	fp, cacheable := p.fingerprint(ctx, spec, inv)
	res := Result{Fingerprint: fp, Cached: cacheable}

	if cacheable {
		entry, hit, err := p.lookup(ctx, cfg.Root, fp, spec)
		if err != nil {
			span.RecordError(err)
			return res, err
		}
		if hit {
			status, err := p.execute(ctx, cfg, inv.Options.Debug, filepath.Join(entry, domain.ArtifactFileName), inv.Args)
			if err == nil {
				res.Outcome = OutcomeHit
				res.ExitCode = status.ExitCode()
				span.SetAttribute("outcome", string(res.Outcome))
				return res, nil
			}
			// The entry stays; eviction is the only thing that removes entries.
			p.logger.Warn(fmt.Sprintf("cached artifact %s could not be started, rebuilding", fp))
			p.logger.Debug(err.Error())
		}
	}

	res, err := p.build(ctx, cfg, inv, spec, res)
	if err != nil {
		span.RecordError(err)
	}
	span.SetAttribute("outcome", string(res.Outcome))
	return res, err
}

// fingerprint returns the key for spec and whether the cache may be used.
func (p *Pipeline) fingerprint(ctx context.Context, spec domain.BuildSpec, inv domain.Invocation) (domain.Fingerprint, bool) {
	_, span := p.tracer.Start(ctx, "fingerprint", ports.WithAttribute("spec_size", spec.Len()))
	defer span.End()

	if !inv.Cacheable() {
		span.SetAttribute("cacheable", false)
		return 0, false
	}

	fp, ok := p.fingerprinter.Fingerprint(spec)
	if !ok {
		p.logger.Debug(fmt.Sprintf("build spec of %d bytes is too large to cache", spec.Len()))
	}
	span.SetAttribute("cacheable", ok)
	return fp, ok
}

// lookup finds a verified entry for fp. Entries that fail verification are
// left alone and reported as a miss.
func (p *Pipeline) lookup(ctx context.Context, root string, fp domain.Fingerprint, spec domain.BuildSpec) (string, bool, error) {
	_, span := p.tracer.Start(ctx, "lookup", ports.WithAttribute("fingerprint", fp.String()))
	defer span.End()

	entry, found := p.store.Lookup(root, fp)
	if !found {
		span.SetAttribute("hit", false)
		return "", false, nil
	}

	valid, err := p.store.Verify(entry, spec)
	if err != nil {
		span.RecordError(err)
		return "", false, err
	}
	if !valid {
		p.logger.Debug(fmt.Sprintf("entry %s does not match this build, ignoring it", fp))
		span.SetAttribute("hit", false)
		return "", false, nil
	}

	if err := p.store.Touch(entry); err != nil {
		p.logger.Debug(err.Error())
	}
	span.SetAttribute("hit", true)
	return entry, true, nil
}

// build compiles the program in a fresh workspace, runs the workspace's own
// binary and publishes it afterwards when possible. The workspace is removed
// on every path unless the user asked to keep it.
func (p *Pipeline) build(ctx context.Context, cfg domain.Config, inv domain.Invocation, spec domain.BuildSpec, res Result) (Result, error) {
	ctx, span := p.tracer.Start(ctx, "build")
	defer span.End()

	tmpRoot := domain.TempPath(cfg.Root)
	p.sweep(tmpRoot, cfg)

	workspace, err := p.sandbox.Create(tmpRoot)
	if err != nil {
		return res, err
	}

	keep := false
	defer func() {
		if keep {
			p.logger.Info("workspace kept at " + workspace)
			return
		}
		if err := p.sandbox.Cleanup(workspace); err != nil {
			p.logger.Warn(err.Error())
		}
	}()

	text, opts, err := p.assembler.Assemble(inv)
	if err != nil {
		return res, err
	}
	keep = opts.Keep
	if keep {
		res.Workspace = workspace
		if err := p.sandbox.Retain(workspace); err != nil {
			p.logger.Warn(err.Error())
		}
	}
	if !opts.Cacheable() {
		res.Cached = false
	}

	source, err := p.sandbox.WriteSource(workspace, opts.Language.SourceFileName(), text)
	if err != nil {
		return res, err
	}

	compiler := cfg.Compiler(opts.Language)
	output := filepath.Join(workspace, domain.ArtifactFileName)
	if opts.ShowAsm {
		output = "-"
	}

	status, err := p.compiler.Compile(ctx, domain.CompileRequest{
		Compiler:   compiler,
		Options:    opts,
		SourcePath: source,
		OutputPath: output,
	})
	if err != nil {
		return res, err
	}
	if !status.Success() {
		span.SetAttribute("compiler_exit", status.ExitCode())
		res.Outcome = OutcomeCompileFailed
		res.ExitCode = status.ExitCode()
		return res, nil
	}

	if opts.ShowAsm {
		res.Outcome = OutcomeAssembly
		return res, nil
	}

	status, err = p.execute(ctx, cfg, opts.Debug, output, inv.Args)
	if err != nil {
		return res, err
	}
	res.Outcome = OutcomeBuilt
	res.ExitCode = status.ExitCode()

	if res.Cached {
		res.Published = p.publish(ctx, cfg, workspace, spec, res.Fingerprint, compiler)
	}
	return res, nil
}

// publish makes room, seals the workspace and commits it. Failures are
// logged, never returned.
func (p *Pipeline) publish(
	ctx context.Context,
	cfg domain.Config,
	workspace string,
	spec domain.BuildSpec,
	fp domain.Fingerprint,
	compiler string,
) bool {
	ctx, span := p.tracer.Start(ctx, "publish", ports.WithAttribute("fingerprint", fp.String()))
	defer span.End()

	removed, err := p.evictor.Enforce(ctx, cfg.Root, cfg.Capacity-1)
	if err != nil {
		p.logger.Warn(err.Error())
	}
	span.SetAttribute("evicted", removed)

	if err := p.store.Seal(workspace, spec, fp, compiler); err != nil {
		p.logger.Warn(err.Error())
		return false
	}

	outcome, err := p.store.Commit(cfg.Root, workspace, fp)
	if err != nil {
		p.logger.Warn(err.Error())
		return false
	}
	span.SetAttribute("outcome", outcome.String())
	if outcome == domain.CommitLost {
		p.logger.Debug(fmt.Sprintf("entry %s was published concurrently, keeping it", fp))
		return false
	}

	if err := p.store.Touch(domain.EntryPath(cfg.Root, fp)); err != nil {
		p.logger.Debug(err.Error())
	}
	return true
}

func (p *Pipeline) execute(ctx context.Context, cfg domain.Config, debug bool, binary string, args []string) (domain.ExitStatus, error) {
	ctx, span := p.tracer.Start(ctx, "execute", ports.WithAttribute("binary", binary))
	defer span.End()

	status, err := p.executor.Run(ctx, domain.RunRequest{
		Binary:        binary,
		Args:          args,
		UnderDebugger: debug,
		Debugger:      cfg.Debugger,
	})
	if err != nil {
		span.RecordError(err)
		return status, err
	}

	span.SetAttribute("exit_code", status.ExitCode())
	if status.Abnormal {
		span.SetAttribute("signal", status.Signal)
	}
	return status, nil
}

// sweep reclaims workspaces abandoned by earlier invocations.
func (p *Pipeline) sweep(tmpRoot string, cfg domain.Config) {
	if cfg.SweepAfter <= 0 {
		return
	}
	n, err := p.sandbox.Sweep(tmpRoot, cfg.SweepAfter)
	if err != nil {
		p.logger.Debug(err.Error())
	}
	if n > 0 {
		p.logger.Debug(fmt.Sprintf("removed %d abandoned workspaces", n))
	}
}
