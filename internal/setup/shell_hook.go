package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/gocd/internal/shell"
)

// BatchDriverName은 cmd용 driver 파일 이름이다.
const BatchDriverName = "go.bat"

// InstallShellHook은 셸 RC 파일에 go driver 함수를 추가한다.
// 이미 설치되어 있으면 건너뛴다.
func InstallShellHook(shellType, rcPath, binary string) error {
	snippet := shell.DriverSnippet(shellType, binary)
	if snippet == "" {
		return fmt.Errorf("setup.InstallShellHook: %w: %s", ErrUnsupportedShell, shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), shell.DriverMarker) {
		return nil // 이미 설치됨
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	return nil
}

// InstallBatchDriver는 dir에 go.bat을 생성한다. 기존 파일은 덮어쓴다.
func InstallBatchDriver(dir, binary string) (string, error) {
	path := filepath.Join(dir, BatchDriverName)
	if err := os.WriteFile(path, []byte(shell.DriverSnippet("cmd", binary)), 0644); err != nil {
		return "", fmt.Errorf("setup.InstallBatchDriver: %w", err)
	}
	return path, nil
}
