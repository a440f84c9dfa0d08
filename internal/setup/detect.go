package setup

import (
	"os"
	"path/filepath"
	"strings"
)

// RCCandidates는 shellType의 초기화 파일 중 driver를 추가할 후보를 반환한다.
// posix 셸은 이미 존재하는 파일만, fish는 conf.d 파일을 항상 포함한다.
func RCCandidates(shellType, home string) []string {
	var names []string
	switch shellType {
	case "bash", "sh":
		names = []string{".bashrc", ".bash_profile", ".bash_login", ".profile"}
	case "zsh":
		names = []string{".zshrc", ".zprofile"}
	case "fish":
		return []string{filepath.Join(home, ".config", "fish", "conf.d", "go.fish")}
	default:
		return nil
	}

	var candidates []string
	for _, name := range names {
		path := filepath.Join(home, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			candidates = append(candidates, path)
		}
	}
	return candidates
}

// PathCandidates는 PATH 중 홈 디렉토리 아래(최대 두 단계)에 있는 디렉토리를
// 반환한다. cmd용 go.bat을 둘 위치 후보다.
func PathCandidates(pathEnv, home string) []string {
	if home == "" {
		return nil
	}
	nhome := normPath(home)

	seen := make(map[string]bool)
	var candidates []string
	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		ndir := normPath(dir)
		if seen[ndir] || !strings.HasPrefix(ndir, nhome+string(filepath.Separator)) {
			continue
		}
		rel := ndir[len(nhome)+1:]
		if strings.Count(rel, string(filepath.Separator)) >= 2 {
			continue
		}
		seen[ndir] = true
		candidates = append(candidates, dir)
	}
	return candidates
}

func normPath(p string) string {
	p = filepath.Clean(p)
	if filepath.Separator == '\\' {
		p = strings.ToLower(p)
	}
	return strings.TrimSuffix(p, string(filepath.Separator))
}
