package shell

import (
	"fmt"
	"runtime"
)

// ScriptEnvVar는 shell driver가 생성할 스크립트 경로를 전달하는 환경 변수다.
const ScriptEnvVar = "GO_SHELL_SCRIPT"

// DriverMarker는 rc 파일에 driver가 이미 설치되었는지 판단하는 표식이다.
const DriverMarker = "go shell integration"

// DefaultFamily는 현재 플랫폼에서 shellType에 맞는 스크립트 계열을 고른다.
func DefaultFamily(shellType string) Family {
	if shellType == "cmd" || (runtime.GOOS == "windows" && shellType == "") {
		return Batch
	}
	return Posix
}

// DriverSnippet는 binary를 호출하고 생성된 스크립트를 source하는
// 'go' 셸 함수를 반환한다. 지원하지 않는 셸이면 빈 문자열이다.
func DriverSnippet(shellType, binary string) string {
	switch shellType {
	case "bash", "zsh", "sh":
		return fmt.Sprintf(`# %[1]s (%[2]s)
go() {
  export %[3]s="$HOME/.__tmp_go.sh"
  command %[4]s "$@"
  _go_rc=$?
  if [ -f "$%[3]s" ]; then
    . "$%[3]s"
  fi
  unset %[3]s
  return $_go_rc
}
`, DriverMarker, shellType, ScriptEnvVar, binary)
	case "fish":
		return fmt.Sprintf(`# %[1]s (fish)
function go
  set -gx %[2]s "$HOME/.__tmp_go.fish"
  command %[3]s $argv
  set -l go_rc $status
  if test -f "$%[2]s"
    source "$%[2]s"
  end
  set -e %[2]s
  return $go_rc
end
`, DriverMarker, ScriptEnvVar, binary)
	case "cmd":
		return fmt.Sprintf("@echo off\r\n"+
			"rem %[1]s (cmd)\r\n"+
			"set %[2]s=%%TEMP%%\\__tmp_go.bat\r\n"+
			"call %[3]s %%*\r\n"+
			"if exist \"%%%[2]s%%\" call \"%%%[2]s%%\"\r\n"+
			"set %[2]s=\r\n", DriverMarker, ScriptEnvVar, binary)
	default:
		return ""
	}
}
