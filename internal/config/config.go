package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hbjs97/gocd/internal/shell"
)

const (
	// ShortcutsFileEnvVar는 shortcuts 파일 경로를 덮어쓰는 환경 변수다.
	ShortcutsFileEnvVar = "GO_SHORTCUTS_FILE"
	// LogFileEnvVar는 로그 파일 경로를 덮어쓰는 환경 변수다.
	LogFileEnvVar = "GO_LOG_FILE"

	shortcutsFileName = "shortcuts.toml"
	logFileName       = "gocd.log"
	legacyDirName     = ".go"
	appDirName        = "gocd"
)

// ErrConfig는 실행 환경을 확정할 수 없을 때의 sentinel error다.
var ErrConfig = errors.New("cannot determine environment")

// Config는 한 번의 실행 동안 고정되는 설정이다.
// 전역 상태 대신 명시적으로 cli.App에 전달된다.
type Config struct {
	// ShortcutsPath는 사용자 shortcut 저장 파일이다.
	ShortcutsPath string
	// ScriptPath는 shell driver가 source할 스크립트 경로다. 비어 있으면 셸에 연결되지 않은 상태다.
	ScriptPath string
	// ShellType은 $SHELL의 base name이다 (Windows에서 $SHELL이 없으면 "cmd").
	ShellType string
	// Family는 생성할 스크립트의 셸 계열이다.
	Family shell.Family

	HomeDir string
	WorkDir string
	TempDir string
	// PathEnv는 $PATH 값이다. cmd용 driver 설치 위치 후보를 찾는 데 쓰인다.
	PathEnv string

	LogPath string
	Verbose bool
}

// FromEnv는 환경 변수와 OS 정보로 Config를 구성한다.
func FromEnv() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config.FromEnv: %w: %w", ErrConfig, err)
	}
	home, _ := os.UserHomeDir() // 홈이 없으면 '~' shortcut만 빠진다

	cfg := &Config{
		ScriptPath: os.Getenv(shell.ScriptEnvVar),
		ShellType:  DetectShell(),
		HomeDir:    home,
		WorkDir:    wd,
		TempDir:    os.TempDir(),
		PathEnv:    os.Getenv("PATH"),
	}
	cfg.Family = shell.DefaultFamily(cfg.ShellType)

	cfg.ShortcutsPath = os.Getenv(ShortcutsFileEnvVar)
	if cfg.ShortcutsPath == "" {
		cfg.ShortcutsPath = DefaultShortcutsPath(home)
	}
	cfg.LogPath = os.Getenv(LogFileEnvVar)
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(filepath.Dir(cfg.ShortcutsPath), logFileName)
	}
	return cfg, nil
}

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return ""
}

// DefaultShortcutsPath는 shortcuts 파일의 기본 경로를 반환한다.
// ~/.go 디렉토리가 이미 있으면 그곳을, 아니면 사용자 설정 디렉토리를 쓴다.
func DefaultShortcutsPath(home string) string {
	if home != "" {
		legacyDir := filepath.Join(home, legacyDirName)
		if info, err := os.Stat(legacyDir); err == nil && info.IsDir() {
			return filepath.Join(legacyDir, shortcutsFileName)
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName, shortcutsFileName)
	}
	return filepath.Join(home, legacyDirName, shortcutsFileName)
}
