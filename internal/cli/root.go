package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// action은 한 번의 실행에서 수행할 동작이다.
type action string

const (
	actionCd     action = "cd"
	actionSet    action = "set"
	actionAdd    action = "add-current"
	actionDelete action = "delete"
	actionList   action = "list"
	actionOpen   action = "open"
)

const helpText = `Quick directory changing.

Usage:
    go <shortcut>[/sub/dir/path]    # change directories
                                    # same as "go -c ..."
    go -c|-o|-a|-d|-s ...           # cd, open, add, delete, set
    go --list [<pattern>]           # list matching shortcuts

Options:
    -h, --help                      print this help and exit
    -V, --version                   print version info and exit

    -c, --cd <path>                 cd to shortcut path in shell
    -s, --set <shortcut> <dir>      set a shortcut to <dir>
    -a, --add-current <shortcut>    add shortcut to current directory
    -d, --delete <shortcut>         delete the named shortcut
    -o, --open <path>               open the given shortcut path in
                                    the file browser
    -l, --list [<pattern>]          list current shortcuts

        --file <path>               use another shortcuts file
        --verbose                   write debug entries to the log

Generally you have a set of directories that you commonly visit.
Typing these paths in full can be a pain. This tool lets you define
a set of directory shortcuts to quickly change to them. For example,
define 'ko' to represent "/home/me/src/komodo", then
    $ go ko
    $ go ko/test
land in /home/me/src/komodo and /home/me/src/komodo/test.

As well, you can always use some standard shortcuts, such as '~'
(home), 'tmp' and '...' (up two dirs).
`

// actionFlags는 동작 선택 플래그다. 최대 하나만 지정할 수 있다.
type actionFlags struct {
	cd, set, add, del, list, open bool
}

func (f actionFlags) pick() (action, error) {
	chosen := []struct {
		on  bool
		act action
	}{
		{f.cd, actionCd},
		{f.set, actionSet},
		{f.add, actionAdd},
		{f.del, actionDelete},
		{f.list, actionList},
		{f.open, actionOpen},
	}

	act := actionCd
	n := 0
	for _, c := range chosen {
		if c.on {
			act = c.act
			n++
		}
	}
	if n > 1 {
		return "", usageErrorf("only one of -c, -s, -a, -d, -l, -o may be given")
	}
	return act, nil
}

// NewRootCmd는 go CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var (
		flags       actionFlags
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:           "go [options] <shortcut>[/sub/dir/path]",
		Short:         "Quick directory changing",
		Long:          helpText,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "go %s\n", Version)
				return nil
			}
			act, err := flags.pick()
			if err != nil {
				return err
			}
			return a.run(cmd, act, args)
		},
	}
	if a.Out != nil {
		cmd.SetOut(a.Out)
	}
	cmd.SetHelpTemplate("{{.Long}}")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	f := cmd.Flags()
	f.BoolVarP(&flags.cd, "cd", "c", false, "cd to shortcut path in shell")
	f.BoolVarP(&flags.set, "set", "s", false, "set a shortcut to <dir>")
	f.BoolVarP(&flags.add, "add-current", "a", false, "add shortcut to current directory")
	f.BoolVarP(&flags.del, "delete", "d", false, "delete the named shortcut")
	f.BoolVarP(&flags.list, "list", "l", false, "list current shortcuts")
	f.BoolVarP(&flags.open, "open", "o", false, "open the given shortcut path in the file browser")
	f.BoolVarP(&showVersion, "version", "V", false, "print version info and exit")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.Config.ShortcutsPath, "file", a.Config.ShortcutsPath, "shortcuts file")
	pf.BoolVar(&a.Config.Verbose, "verbose", a.Config.Verbose, "write debug entries to the log")
	return cmd
}

// run은 선택된 동작을 수행한다. 셸에 연결되지 않았으면 setup으로 대체된다.
func (a *App) run(cmd *cobra.Command, act action, args []string) error {
	log := a.log()
	if a.Config.ScriptPath == "" {
		log.Debug("script path not set, running setup", "action", act)
		return a.runSetup(cmd)
	}
	log.Debug("dispatch", "action", act, "args", args)

	switch act {
	case actionCd:
		return a.runCd(args)
	case actionSet:
		return a.runSet(args)
	case actionAdd:
		return a.runAddCurrent(args)
	case actionDelete:
		return a.runDelete(args)
	case actionList:
		return a.runList(cmd, args)
	case actionOpen:
		return a.runOpen(args)
	default:
		return fmt.Errorf("cli.run: %w: unknown action %q", ErrInternal, act)
	}
}
