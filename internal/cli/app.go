package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hbjs97/gocd/internal/browse"
	"github.com/hbjs97/gocd/internal/config"
	"github.com/hbjs97/gocd/internal/logger"
	"github.com/hbjs97/gocd/internal/resolver"
	"github.com/hbjs97/gocd/internal/setup"
	"github.com/hbjs97/gocd/internal/shell"
	"github.com/hbjs97/gocd/internal/store"
)

// Version은 빌드 시 -ldflags "-X .../internal/cli.Version=..."로 덮어쓸 수 있다.
var Version = "1.2.1"

// binaryName은 shell driver가 호출하는 실행 파일 이름이다.
const binaryName = "gocd"

// App은 한 번의 실행에 필요한 의존성을 담는다.
type App struct {
	Config     *config.Config
	Opener     browse.Opener
	FormRunner setup.FormRunner
	// Logger가 nil이면 플래그 파싱 후 Config.LogPath로 생성한다.
	Logger *slog.Logger
	// Out이 nil이면 os.Stdout을 쓴다.
	Out io.Writer
}

// NewApp은 실제 환경용 App을 생성한다.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config:     cfg,
		Opener:     browse.FileBrowser{},
		FormRunner: &setup.HuhFormRunner{},
	}
}

// Execute는 args를 해석해 하나의 동작을 수행한다.
func (a *App) Execute(ctx context.Context, args []string) error {
	// 이전 실행의 스크립트가 다시 source되지 않도록 인자 해석 전에 덮어쓴다.
	if a.Config.ScriptPath != "" {
		if err := shell.Emit(a.Config.ScriptPath, a.Config.Family, ""); err != nil {
			return fmt.Errorf("cli.Execute: %w: %w", ErrInternal, err)
		}
	}

	cmd := a.NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (a *App) log() *slog.Logger {
	if a.Logger == nil {
		a.Logger = logger.New(a.Config.LogPath, a.Config.Verbose)
	}
	return a.Logger
}

func (a *App) store() *store.Store {
	c := a.Config
	return store.New(c.ShortcutsPath, store.Defaults(c.WorkDir, c.HomeDir, c.TempDir))
}

// resolve는 저장된 shortcut으로 query를 디렉토리로 변환한다.
func (a *App) resolve(query string) (string, error) {
	set, err := a.store().Load()
	if err != nil {
		return "", err
	}
	return resolver.New(set, a.Config.HomeDir).Resolve(query)
}
