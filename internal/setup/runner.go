package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/gocd/internal/shell"
)

// ErrUnknownShell은 사용자의 셸을 알아낼 수 없을 때 반환된다.
var ErrUnknownShell = errors.New("couldn't determine your shell")

// ErrUnsupportedShell은 driver snippet이 없는 셸에 설치하려 할 때 반환된다.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Runner는 셸에 연결되지 않은 상태에서 실행되는 setup의 진입점이다.
type Runner struct {
	ShellType  string
	HomeDir    string
	PathEnv    string // cmd용 go.bat 후보 탐색에 쓰인다
	Binary     string
	Out        io.Writer
	FormRunner FormRunner
}

// Run은 driver 함수를 안내하고, 사용자가 고르면 설치한다.
func (r *Runner) Run(ctx context.Context) error {
	if r.ShellType == "" {
		return fmt.Errorf("setup.Run: %w (SHELL is not set)", ErrUnknownShell)
	}

	snippet := shell.DriverSnippet(r.ShellType, r.Binary)
	if snippet == "" {
		r.printUnsupported()
		return nil
	}

	fmt.Fprintln(r.Out, "* * *")
	defer fmt.Fprintln(r.Out, "* * *")

	if r.ShellType == "cmd" {
		return r.runBatch(ctx, snippet)
	}
	return r.runPosix(ctx, snippet)
}

func (r *Runner) runPosix(_ context.Context, snippet string) error {
	fmt.Fprintf(r.Out, `It appears that 'go' is not set up in your environment. Typing 'go'
must end up calling the %[1]s function 'go' and *not* '%[2]s' directly.
This is how 'go' can change the directory of your current shell.

You need the following function in your shell startup script:

%[3]s
To just try it in the current shell, paste the function there.
`, r.ShellType, r.Binary, indent(snippet))

	candidates := RCCandidates(r.ShellType, r.HomeDir)
	if len(candidates) == 0 {
		return nil
	}

	rcPath, err := r.FormRunner.RunInstallSelect(
		"Append the 'go' function to one of these startup scripts?", candidates)
	if err != nil {
		return err
	}
	if rcPath == "" {
		return nil
	}

	if err := InstallShellHook(r.ShellType, rcPath, r.Binary); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "\n'go' function appended to '%s'.\n", rcPath)
	fmt.Fprintf(r.Out, "Run 'source %s' to enable it in this shell.\n", rcPath)
	fmt.Fprintln(r.Out, "You should then be able to run 'go --help'.")
	return nil
}

func (r *Runner) runBatch(_ context.Context, snippet string) error {
	fmt.Fprintf(r.Out, `It appears that 'go' is not set up in your environment. Typing 'go'
must end up calling 'go.bat' somewhere on your PATH and *not* '%[1]s'
directly. This is how 'go' can change the directory of your current shell.

You need a file "go.bat" with the following contents in a directory on
your PATH:

%[2]s`, r.Binary, indent(snippet))

	candidates := PathCandidates(r.PathEnv, r.HomeDir)
	if len(candidates) == 0 {
		return nil
	}

	dir, err := r.FormRunner.RunInstallSelect("Create 'go.bat' in one of these directories?", candidates)
	if err != nil {
		return err
	}
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, BatchDriverName)); err == nil {
		overwrite, err := r.FormRunner.RunConfirm(
			fmt.Sprintf("'%s' already exists in %s. Overwrite it?", BatchDriverName, dir))
		if err != nil {
			return err
		}
		if !overwrite {
			return nil
		}
	}

	path, err := InstallBatchDriver(dir, r.Binary)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "\nCreated '%s'.\n", path)
	fmt.Fprintln(r.Out, "You should now be able to run 'go --help'.")
	return nil
}

func (r *Runner) printUnsupported() {
	fmt.Fprintf(r.Out, `It appears that 'go' is not set up in your environment. Typing 'go'
must end up calling a shell function 'go' and *not* '%[1]s' directly.

The function for the Bash shell is:

%[2]s
Translate it for your shell (%[3]s) and add it to your startup script.
`, r.Binary, indent(shell.DriverSnippet("bash", r.Binary)), r.ShellType)
}

// indent는 s의 각 줄 앞에 공백 네 칸을 붙인다.
func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
	}
	return b.String()
}
