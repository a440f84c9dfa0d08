package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbjs97/gocd/internal/setup"
)

// runSetup은 shell driver가 없는 상태에서 설치를 안내한다.
func (a *App) runSetup(cmd *cobra.Command) error {
	r := &setup.Runner{
		ShellType:  a.Config.ShellType,
		HomeDir:    a.Config.HomeDir,
		PathEnv:    a.Config.PathEnv,
		Binary:     binaryName,
		Out:        cmd.OutOrStdout(),
		FormRunner: a.FormRunner,
	}
	if err := r.Run(cmd.Context()); err != nil {
		return err
	}
	a.log().Info("setup finished", "shell", a.Config.ShellType)
	return nil
}
