package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FormatVersion은 shortcuts 파일에 기록되는 포맷 버전이다.
const FormatVersion = "1.0"

// ErrStore는 shortcuts 파일을 읽거나 쓰지 못할 때의 sentinel error다.
var ErrStore = errors.New("cannot access shortcuts file")

// file은 shortcuts.toml의 최상위 구조체다.
type file struct {
	Version   string   `toml:"version"`
	Shortcuts []record `toml:"shortcut"`
}

type record struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Store는 사용자 정의 shortcut을 파일에 영속화한다.
// 잠금은 하지 않는다. 동시 실행 시 마지막 쓰기가 이긴다.
type Store struct {
	path     string
	defaults []Entry
}

// New는 path를 저장소로 사용하는 Store를 생성한다.
// defaults는 Load 시 사용자 항목 아래에 깔리는 기본 shortcut이다.
func New(path string, defaults []Entry) *Store {
	return &Store{path: path, defaults: defaults}
}

// Path는 shortcuts 파일 경로를 반환한다.
func (s *Store) Path() string {
	return s.path
}

// Load는 기본 shortcut 위에 저장된 사용자 shortcut을 병합한 Set을 반환한다.
// 파일이 없으면 사용자 항목 없이 기본값만 반환한다.
func (s *Store) Load() (*Set, error) {
	f, err := s.read()
	if err != nil {
		return nil, err
	}
	set := newSet(s.defaults)
	for _, r := range f.Shortcuts {
		set.entries[r.Name] = Entry{Name: r.Name, Path: r.Path}
	}
	return set, nil
}

// Put은 name을 path로 설정한다. 이미 있으면 값을 갱신하고, 없으면 끝에 추가한다.
func (s *Store) Put(name, path string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidatePath(path); err != nil {
		return err
	}

	f, err := s.read()
	if err != nil {
		return err
	}

	updated := false
	for i := range f.Shortcuts {
		if f.Shortcuts[i].Name == name {
			f.Shortcuts[i].Path = path
			updated = true
			break
		}
	}
	if !updated {
		f.Shortcuts = append(f.Shortcuts, record{Name: name, Path: path})
	}
	return s.write(f)
}

// Delete는 name을 저장소에서 제거한다. 없으면 *NotFoundError를 반환한다.
func (s *Store) Delete(name string) error {
	f, err := s.read()
	if err != nil {
		return err
	}

	idx := -1
	for i, r := range f.Shortcuts {
		if r.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Name: name}
	}
	f.Shortcuts = append(f.Shortcuts[:idx], f.Shortcuts[idx+1:]...)
	return s.write(f)
}

// read는 저장 파일을 파싱한다. TOML 파일이 없으면 같은 디렉토리의
// 레거시 shortcuts.xml을 시도하고, 그것도 없으면 빈 파일을 반환한다.
func (s *Store) read() (*file, error) {
	var f file
	_, err := toml.DecodeFile(s.path, &f)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		legacy, lerr := ReadLegacyXML(s.legacyPath())
		if lerr != nil {
			return nil, lerr
		}
		for _, e := range legacy {
			f.Shortcuts = append(f.Shortcuts, record{Name: e.Name, Path: e.Path})
		}
	default:
		return nil, fmt.Errorf("store.read: %w: %w", ErrStore, err)
	}
	if f.Version == "" {
		f.Version = FormatVersion
	}
	return &f, nil
}

func (s *Store) legacyPath() string {
	return filepath.Join(filepath.Dir(s.path), LegacyFileName)
}

// write는 임시 파일에 기록한 뒤 rename하여 원자적으로 교체한다 (0600 권한).
func (s *Store) write(f *file) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("store.write: %w: %w", ErrStore, err)
	}

	tmp, err := os.CreateTemp(dir, ".shortcuts-*.toml")
	if err != nil {
		return fmt.Errorf("store.write: %w: %w", ErrStore, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename 성공 후에는 no-op

	enc := toml.NewEncoder(tmp)
	enc.Indent = ""
	if err := enc.Encode(f); err != nil {
		tmp.Close()
		return fmt.Errorf("store.write: %w: %w", ErrStore, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("store.write: %w: %w", ErrStore, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store.write: %w: %w", ErrStore, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("store.write: %w: %w", ErrStore, err)
	}
	return nil
}
