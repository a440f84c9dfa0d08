package setup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFormRunner는 테스트용 FormRunner다.
type mockFormRunner struct {
	selected      string
	selectErr     error
	confirm       bool
	gotCandidates []string
	confirmCalled bool
}

func (m *mockFormRunner) RunInstallSelect(title string, candidates []string) (string, error) {
	m.gotCandidates = candidates
	return m.selected, m.selectErr
}

func (m *mockFormRunner) RunConfirm(message string) (bool, error) {
	m.confirmCalled = true
	return m.confirm, nil
}

func TestRunner_Bash_InstallsIntoSelectedRC(t *testing.T) {
	home := t.TempDir()
	rcPath := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("# mine\n"), 0600))

	out := new(bytes.Buffer)
	mock := &mockFormRunner{selected: rcPath}
	r := &Runner{ShellType: "bash", HomeDir: home, Binary: "gocd", Out: out, FormRunner: mock}

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, []string{rcPath}, mock.gotCandidates)
	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# mine")
	assert.Contains(t, string(content), "go shell integration (bash)")
	assert.Contains(t, out.String(), "not set up")
	assert.Contains(t, out.String(), "source "+rcPath)
}

func TestRunner_Bash_UserDeclines(t *testing.T) {
	home := t.TempDir()
	rcPath := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("# mine\n"), 0600))

	mock := &mockFormRunner{selected: ""}
	r := &Runner{ShellType: "bash", HomeDir: home, Binary: "gocd", Out: new(bytes.Buffer), FormRunner: mock}

	require.NoError(t, r.Run(context.Background()))

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))
}

func TestRunner_Bash_NoCandidatesOnlyPrints(t *testing.T) {
	out := new(bytes.Buffer)
	mock := &mockFormRunner{}
	r := &Runner{ShellType: "bash", HomeDir: t.TempDir(), Binary: "gocd", Out: out, FormRunner: mock}

	require.NoError(t, r.Run(context.Background()))
	assert.Nil(t, mock.gotCandidates)
	assert.Contains(t, out.String(), "command gocd")
}

func TestRunner_FormError(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".zshrc"), nil, 0600))

	mock := &mockFormRunner{selectErr: fmt.Errorf("user aborted")}
	r := &Runner{ShellType: "zsh", HomeDir: home, Binary: "gocd", Out: new(bytes.Buffer), FormRunner: mock}

	assert.Error(t, r.Run(context.Background()))
}

func TestRunner_Cmd_CreatesBatchDriver(t *testing.T) {
	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.Mkdir(bin, 0700))

	out := new(bytes.Buffer)
	mock := &mockFormRunner{selected: bin}
	r := &Runner{ShellType: "cmd", HomeDir: home, PathEnv: bin, Binary: "gocd", Out: out, FormRunner: mock}

	require.NoError(t, r.Run(context.Background()))
	assert.False(t, mock.confirmCalled)

	content, err := os.ReadFile(filepath.Join(bin, "go.bat"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "call gocd %*")
}

func TestRunner_Cmd_KeepsExistingWhenNotConfirmed(t *testing.T) {
	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.Mkdir(bin, 0700))
	existing := filepath.Join(bin, "go.bat")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0600))

	mock := &mockFormRunner{selected: bin, confirm: false}
	r := &Runner{ShellType: "cmd", HomeDir: home, PathEnv: bin, Binary: "gocd", Out: new(bytes.Buffer), FormRunner: mock}

	require.NoError(t, r.Run(context.Background()))
	assert.True(t, mock.confirmCalled)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestRunner_UnsupportedShellPrintsBashDriver(t *testing.T) {
	out := new(bytes.Buffer)
	r := &Runner{ShellType: "tcsh", HomeDir: t.TempDir(), Binary: "gocd", Out: out, FormRunner: &mockFormRunner{}}

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "go() {")
	assert.Contains(t, out.String(), "(tcsh)")
}

func TestRunner_UnknownShell(t *testing.T) {
	r := &Runner{Binary: "gocd", Out: new(bytes.Buffer), FormRunner: &mockFormRunner{}}
	assert.ErrorIs(t, r.Run(context.Background()), ErrUnknownShell)
}
