package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrNotFound는 shortcut이 존재하지 않을 때의 sentinel error다.
var ErrNotFound = errors.New("shortcut not found")

// ErrInvalidName은 사용할 수 없는 shortcut 이름에 대한 sentinel error다.
var ErrInvalidName = errors.New("invalid shortcut name")

// ErrEmptyPath는 빈 경로로 shortcut을 설정하려 할 때의 sentinel error다.
var ErrEmptyPath = errors.New("empty shortcut path")

// ErrInvalidPath는 저장 파일에 기록할 수 없는 경로에 대한 sentinel error다.
var ErrInvalidPath = errors.New("invalid shortcut path")

// NotFoundError는 조회하거나 삭제하려는 shortcut 이름을 담는다.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("shortcut '%s' does not exist", e.Name)
}

// Is는 errors.Is(err, ErrNotFound)를 만족시킨다.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Entry는 하나의 shortcut이다.
type Entry struct {
	Name string
	Path string
	// Default는 덮어쓰이지 않은 기본 shortcut이면 true다.
	Default bool
}

// ValidateName은 name이 resolver로 도달 가능하고 저장 가능한 이름인지 확인한다.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidName, name)
	}
	return nil
}

// ValidatePath는 path가 shortcuts 파일에 손실 없이 기록될 수 있는지 확인한다.
// TOML 문자열은 UTF-8만 허용한다.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if !utf8.ValidString(path) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidPath, path)
	}
	return nil
}

// Defaults는 실행 시마다 다시 계산되는 기본 shortcut 목록을 반환한다.
// homeDir가 비어 있으면 '~'는 포함하지 않는다.
func Defaults(workDir, homeDir, tempDir string) []Entry {
	parent := filepath.Dir(workDir)
	entries := []Entry{
		{Name: ".", Path: workDir, Default: true},
		{Name: "..", Path: parent, Default: true},
		{Name: "...", Path: filepath.Dir(parent), Default: true},
		{Name: "tmp", Path: tempDir, Default: true},
	}
	if homeDir != "" {
		entries = append(entries, Entry{Name: "~", Path: homeDir, Default: true})
	}
	return entries
}

// Set은 기본 shortcut과 사용자 shortcut을 병합한 결과다.
type Set struct {
	entries map[string]Entry
}

func newSet(defaults []Entry) *Set {
	s := &Set{entries: make(map[string]Entry, len(defaults))}
	for _, e := range defaults {
		e.Default = true
		s.entries[e.Name] = e
	}
	return s
}

// Lookup은 이름으로 shortcut을 조회한다.
func (s *Set) Lookup(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Len은 병합된 shortcut 개수를 반환한다.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries는 모든 shortcut을 이름순으로 반환한다.
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sortByName(out)
	return out
}

// Listing은 list 출력용으로 분류된 shortcut이다.
type Listing struct {
	Defaults []Entry
	Custom   []Entry
}

// List는 이름에 filter가 포함된 shortcut만 골라 기본/사용자 그룹으로 나눈다.
// 비교는 대소문자를 구분하지 않으며, 빈 filter는 전체를 반환한다.
func (s *Set) List(filter string) Listing {
	filter = strings.ToLower(filter)
	var l Listing
	for _, e := range s.Entries() {
		if !strings.Contains(strings.ToLower(e.Name), filter) {
			continue
		}
		if e.Default {
			l.Defaults = append(l.Defaults, e)
		} else {
			l.Custom = append(l.Custom, e)
		}
	}
	return l
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}
