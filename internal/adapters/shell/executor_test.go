package shell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cscript/internal/adapters/shell"
	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	runner.EXPECT().
		Spawn(gomock.Any(), []string{"/c/a.out", "x", "y"}).
		Return(domain.ExitStatus{Code: 2}, nil)

	status, err := shell.NewExecutor(runner, shell.NewGDB(), log).Run(t.Context(), domain.RunRequest{
		Binary: "/c/a.out",
		Args:   []string{"x", "y"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, status.ExitCode())
}

func TestExecutor_RunUnderDebugger(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	runner.EXPECT().
		Spawn(gomock.Any(), []string{"lldb-gdb", "--args", "/c/a.out", "x"}).
		Return(domain.ExitStatus{}, nil)

	_, err := shell.NewExecutor(runner, shell.NewGDB(), log).Run(t.Context(), domain.RunRequest{
		Binary:        "/c/a.out",
		Args:          []string{"x"},
		UnderDebugger: true,
		Debugger:      "lldb-gdb",
	})

	require.NoError(t, err)
}

func TestExecutor_AbnormalIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	runner.EXPECT().Spawn(gomock.Any(), gomock.Any()).
		Return(domain.ExitStatus{Abnormal: true, Signal: "segmentation fault"}, nil)
	log.EXPECT().Warn("a.out terminated abnormally (segmentation fault)")

	status, err := shell.NewExecutor(runner, shell.NewGDB(), log).Run(t.Context(), domain.RunRequest{Binary: "/c/a.out"})

	require.NoError(t, err)
	assert.Equal(t, domain.FatalExitCode, status.ExitCode())
}

func TestExecutor_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	startErr := errors.New("exec format error")

	runner.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(domain.ExitStatus{}, startErr)

	_, err := shell.NewExecutor(runner, shell.NewGDB(), log).Run(t.Context(), domain.RunRequest{Binary: "/c/a.out"})

	require.ErrorIs(t, err, startErr)
}

func TestGDB_Command(t *testing.T) {
	gdb := shell.NewGDB()

	assert.Equal(t, []string{"gdb", "--args", "/bin/prog"}, gdb.Command("", "/bin/prog", nil))
	assert.Equal(t, []string{"cgdb", "--args", "/bin/prog", "-v"}, gdb.Command("cgdb", "/bin/prog", []string{"-v"}))
}
