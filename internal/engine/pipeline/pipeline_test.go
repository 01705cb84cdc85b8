package pipeline_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cscript/internal/adapters/telemetry"
	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports/mocks"
	"go.trai.ch/cscript/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const (
	root      = "/cache-root"
	workspace = "/cache-root/tmp/ws"
	fp        = domain.Fingerprint(0x2a)
)

var (
	entry = domain.EntryPath(root, fp)
	spec  = domain.NewSpecBuilder().Option("-O2").Inline("return 2;").Build()
)

type fixture struct {
	fingerprinter *mocks.MockFingerprinter
	store         *mocks.MockCacheStore
	evictor       *mocks.MockEvictor
	sandbox       *mocks.MockSandbox
	assembler     *mocks.MockSourceAssembler
	compiler      *mocks.MockCompiler
	executor      *mocks.MockExecutor
	logger        *mocks.MockLogger
	pipeline      *pipeline.Pipeline
	cfg           domain.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		fingerprinter: mocks.NewMockFingerprinter(ctrl),
		store:         mocks.NewMockCacheStore(ctrl),
		evictor:       mocks.NewMockEvictor(ctrl),
		sandbox:       mocks.NewMockSandbox(ctrl),
		assembler:     mocks.NewMockSourceAssembler(ctrl),
		compiler:      mocks.NewMockCompiler(ctrl),
		executor:      mocks.NewMockExecutor(ctrl),
		logger:        mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.sandbox.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	f.cfg = domain.DefaultConfig()
	f.cfg.Root = root
	f.cfg.Capacity = 4

	f.pipeline = pipeline.New(
		f.fingerprinter, f.store, f.evictor, f.sandbox, f.assembler,
		f.compiler, f.executor, telemetry.NewNoOpTracer(), f.logger,
	)
	return f
}

func inlineInvocation() domain.Invocation {
	return domain.Invocation{
		Options: domain.BuildOptions{CFlags: []string{"-O2"}},
		Source:  domain.Source{Kind: domain.SourceInline, Text: "return 2"},
	}
}

// expectBuild sets up a sandbox build that compiles to the
// workspace artifact with the given compiler status.
func (f *fixture) expectBuild(inv domain.Invocation, opts domain.BuildOptions, status domain.ExitStatus) *gomock.Call {
	f.sandbox.EXPECT().Create(domain.TempPath(root)).Return(workspace, nil)
	f.assembler.EXPECT().Assemble(inv).Return([]byte("program"), opts, nil)
	f.sandbox.EXPECT().WriteSource(workspace, opts.Language.SourceFileName(), []byte("program")).
		Return(filepath.Join(workspace, opts.Language.SourceFileName()), nil)
	return f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(status, nil)
}

func (f *fixture) expectRun(binary string, status domain.ExitStatus) {
	f.executor.EXPECT().Run(gomock.Any(), domain.RunRequest{
		Binary:   binary,
		Debugger: f.cfg.Debugger,
	}).Return(status, nil)
}

func TestRun_CacheHit(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	gomock.InOrder(
		f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec),
		f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true),
		f.store.EXPECT().Lookup(root, fp).Return(entry, true),
		f.store.EXPECT().Verify(entry, spec).Return(true, nil),
		f.store.EXPECT().Touch(entry).Return(nil),
	)
	f.expectRun(filepath.Join(entry, domain.ArtifactFileName), domain.ExitStatus{Code: 2})

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeHit, res.Outcome)
	assert.Equal(t, 2, res.ExitCode)
}

func TestRun_MissRunsWorkspaceBinaryThenPublishes(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{}).Do(func(_ any, req domain.CompileRequest) {
		assert.Equal(t, "gcc", req.Compiler)
		assert.Equal(t, filepath.Join(workspace, domain.ArtifactFileName), req.OutputPath)
	})
	gomock.InOrder(
		f.executor.EXPECT().Run(gomock.Any(), domain.RunRequest{
			Binary:   filepath.Join(workspace, domain.ArtifactFileName),
			Debugger: f.cfg.Debugger,
		}).Return(domain.ExitStatus{Code: 2}, nil),
		f.evictor.EXPECT().Enforce(gomock.Any(), root, 3).Return(1, nil),
		f.store.EXPECT().Seal(workspace, spec, fp, "gcc").Return(nil),
		f.store.EXPECT().Commit(root, workspace, fp).Return(domain.CommitWon, nil),
		f.store.EXPECT().Touch(entry).Return(nil),
	)
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeBuilt, res.Outcome)
	assert.Equal(t, 2, res.ExitCode)
	assert.True(t, res.Published)
}

func TestRun_CollisionRebuildsWithoutTouchingEntry(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return(entry, true)
	f.store.EXPECT().Verify(entry, spec).Return(false, nil)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.evictor.EXPECT().Enforce(gomock.Any(), root, 3).Return(0, nil)
	f.store.EXPECT().Seal(workspace, spec, fp, "gcc").Return(nil)
	f.store.EXPECT().Commit(root, workspace, fp).Return(domain.CommitLost, nil)
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{Code: 5})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeBuilt, res.Outcome)
	assert.Equal(t, 5, res.ExitCode)
	assert.False(t, res.Published)
}

func TestRun_OversizedSpecSkipsCache(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(domain.Fingerprint(0), false)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 0, res.ExitCode)
}

func TestRun_CompileFailureIsPropagated(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{Code: 1})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeCompileFailed, res.Outcome)
	assert.Equal(t, 1, res.ExitCode)
	assert.False(t, res.Published)
}

func TestRun_KeepRetainsWorkspaceAndSkipsCache(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	inv.Options.Keep = true

	f.logger.EXPECT().Info("workspace kept at " + workspace)
	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.sandbox.EXPECT().Retain(workspace).Return(nil)
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{})

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, workspace, res.Workspace)
	assert.False(t, res.Cached)
}

func TestRun_KeepPragmaDisablesPublish(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	effective := inv.Options
	effective.Keep = true

	f.logger.EXPECT().Info(gomock.Any())
	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.expectBuild(inv, effective, domain.ExitStatus{})
	f.sandbox.EXPECT().Retain(workspace).Return(nil)
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{})

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.False(t, res.Published)
	assert.False(t, res.Cached)
}

func TestRun_ShowAsmRunsNothing(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	inv.Options.ShowAsm = true

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{}).Do(func(_ any, req domain.CompileRequest) {
		assert.Equal(t, "-", req.OutputPath)
	})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeAssembly, res.Outcome)
}

func TestRun_HitThatCannotStartFallsBackToBuild(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	cached := filepath.Join(entry, domain.ArtifactFileName)

	f.logger.EXPECT().Warn(gomock.Any())
	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return(entry, true)
	f.store.EXPECT().Verify(entry, spec).Return(true, nil)
	f.store.EXPECT().Touch(entry).Return(nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.ExitStatus{}, errors.New("exec format error"))
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.evictor.EXPECT().Enforce(gomock.Any(), root, 3).Return(0, nil)
	f.store.EXPECT().Seal(workspace, spec, fp, "gcc").Return(nil)
	f.store.EXPECT().Commit(root, workspace, fp).Return(domain.CommitLost, nil)
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{Code: 2})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)
	f.store.EXPECT().Remove(cached).Times(0)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeBuilt, res.Outcome)
	assert.Equal(t, 2, res.ExitCode)
}

func TestRun_AbnormalTerminationIsFatalCode(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return(entry, true)
	f.store.EXPECT().Verify(entry, spec).Return(true, nil)
	f.store.EXPECT().Touch(entry).Return(nil)
	f.expectRun(filepath.Join(entry, domain.ArtifactFileName), domain.ExitStatus{Abnormal: true, Signal: "segmentation fault"})

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, domain.FatalExitCode, res.ExitCode)
}

func TestRun_SandboxExhaustionIsFatal(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.sandbox.EXPECT().Create(domain.TempPath(root)).Return("", domain.ErrSandboxExhausted)

	_, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.ErrorIs(t, err, domain.ErrSandboxExhausted)
}

func TestRun_UnreadableSpecsIsFatal(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	readErr := errors.New("permission denied")

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return(entry, true)
	f.store.EXPECT().Verify(entry, spec).Return(false, readErr)

	_, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.ErrorIs(t, err, readErr)
}

func TestRun_SourceWriteFailureCleansUp(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	writeErr := errors.New("no space left on device")

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.sandbox.EXPECT().Create(domain.TempPath(root)).Return(workspace, nil)
	f.assembler.EXPECT().Assemble(inv).Return([]byte("program"), inv.Options, nil)
	f.sandbox.EXPECT().WriteSource(workspace, "source.c", []byte("program")).Return("", writeErr)
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	_, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.ErrorIs(t, err, writeErr)
}

func TestRun_StartFailureSkipsPublish(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()
	startErr := errors.New("exec format error")

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ExitStatus{}, startErr)
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.ErrorIs(t, err, startErr)
	assert.False(t, res.Published)
}

func TestRun_PublishFailureKeepsExitCode(t *testing.T) {
	f := newFixture(t)
	inv := inlineInvocation()

	f.logger.EXPECT().Warn(gomock.Any()).Times(2)
	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.fingerprinter.EXPECT().Fingerprint(spec).Return(fp, true)
	f.store.EXPECT().Lookup(root, fp).Return("", false)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.evictor.EXPECT().Enforce(gomock.Any(), root, 3).Return(0, errors.New("scan failed"))
	f.store.EXPECT().Seal(workspace, spec, fp, "gcc").Return(errors.New("disk full"))
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{Code: 2})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.Equal(t, 2, res.ExitCode)
}

func TestRun_StdinIsNeverCached(t *testing.T) {
	f := newFixture(t)
	inv := domain.Invocation{Source: domain.Source{Kind: domain.SourceStdin}}

	f.assembler.EXPECT().Spec(f.cfg, inv).Return(spec)
	f.expectBuild(inv, inv.Options, domain.ExitStatus{})
	f.expectRun(filepath.Join(workspace, domain.ArtifactFileName), domain.ExitStatus{})
	f.sandbox.EXPECT().Cleanup(workspace).Return(nil)

	res, err := f.pipeline.Run(t.Context(), f.cfg, inv)

	require.NoError(t, err)
	assert.False(t, res.Cached)
}
