package resolver

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/hbjs97/gocd/internal/store"
)

// ErrEmptyQuery는 이동할 경로가 주어지지 않았을 때 반환된다.
var ErrEmptyQuery = errors.New("no path was given")

// homeShortcut은 셸이 '~'를 미리 확장했을 때 대신 조회하는 이름이다.
const homeShortcut = "~"

// Resolver는 "<shortcut>[/<subpath>]" 질의를 디렉토리 경로로 변환한다.
// 파일 시스템에 접근하지 않는다.
type Resolver struct {
	set  *store.Set
	home string
}

// New는 새 Resolver를 생성한다. home은 '~' 확장 감지에 쓰인다.
func New(set *store.Set, home string) *Resolver {
	return &Resolver{set: set, home: home}
}

// Resolve는 query를 대상 디렉토리로 변환한다.
// shortcut이 없으면 *store.NotFoundError를 반환한다.
func (r *Resolver) Resolve(query string) (string, error) {
	if query == "" {
		return "", ErrEmptyQuery
	}

	name, suffix := Split(query)
	entry, ok := r.set.Lookup(name)
	if !ok {
		// bash 등은 '~'를 홈 디렉토리로 확장한 뒤 넘겨준다.
		rest, isHome := r.trimHome(query)
		if !isHome {
			return "", &store.NotFoundError{Name: name}
		}
		entry, ok = r.set.Lookup(homeShortcut)
		if !ok {
			return "", &store.NotFoundError{Name: name}
		}
		suffix = rest
	}

	if suffix == "" {
		return entry.Path, nil
	}
	return filepath.Join(entry.Path, filepath.Clean(suffix)), nil
}

// Split은 query를 첫 '/'에서, 없으면 첫 '\'에서 이름과 나머지로 나눈다.
func Split(query string) (name, suffix string) {
	idx := strings.IndexByte(query, '/')
	if idx < 0 {
		idx = strings.IndexByte(query, '\\')
	}
	if idx < 0 {
		return query, ""
	}
	return query[:idx], query[idx+1:]
}

// trimHome은 query가 홈 디렉토리(와 구분자)로 시작하면 나머지를 반환한다.
func (r *Resolver) trimHome(query string) (string, bool) {
	if r.home == "" || !strings.HasPrefix(query, r.home) {
		return "", false
	}
	rest := query[len(r.home):]
	if rest == "" || strings.HasSuffix(r.home, "/") || strings.HasSuffix(r.home, `\`) {
		// 홈이 "/"처럼 구분자로 끝나면 경계는 이미 지났다.
		return rest, true
	}
	if rest[0] != '/' && rest[0] != '\\' {
		return "", false
	}
	return rest[1:], true
}
