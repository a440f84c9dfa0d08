package cli

import (
	"github.com/hbjs97/gocd/internal/shell"
)

// runCd는 대상 디렉토리로 이동하는 스크립트를 기록한다.
func (a *App) runCd(args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	target, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	if err := shell.Emit(a.Config.ScriptPath, a.Config.Family, target); err != nil {
		return err
	}
	a.log().Info("cd", "query", args[0], "target", target)
	return nil
}

// runSet은 name을 dir로 설정한다. dir은 검증하지 않고 그대로 저장한다.
func (a *App) runSet(args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	return a.put(args[0], args[1])
}

// runAddCurrent는 name을 현재 디렉토리로 설정한다.
func (a *App) runAddCurrent(args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	return a.put(args[0], a.Config.WorkDir)
}

func (a *App) put(name, path string) error {
	if err := a.store().Put(name, path); err != nil {
		return err
	}
	a.log().Info("shortcut set", "name", name, "path", path)
	return nil
}

func (a *App) runDelete(args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	if err := a.store().Delete(args[0]); err != nil {
		return err
	}
	a.log().Info("shortcut deleted", "name", args[0])
	return nil
}

// runOpen은 대상 디렉토리를 파일 브라우저로 연다.
func (a *App) runOpen(args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	target, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	if err := a.Opener.Open(target); err != nil {
		return err
	}
	a.log().Info("open", "query", args[0], "target", target)
	return nil
}
