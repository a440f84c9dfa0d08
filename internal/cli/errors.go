package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hbjs97/gocd/internal/resolver"
	"github.com/hbjs97/gocd/internal/store"
)

var (
	// ErrUsage는 잘못된 플래그나 인자 개수에 대한 sentinel error다.
	ErrUsage = errors.New("invalid usage")
	// ErrInternal은 사용자 입력과 무관한 실행 오류다.
	ErrInternal = errors.New("internal error")
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNotFound는 shortcut이 없을 때의 sentinel error다.
	ErrNotFound = store.ErrNotFound
	// ErrStore는 shortcuts 파일 입출력 오류다.
	ErrStore = store.ErrStore
	// ErrEmptyQuery는 cd/open에 경로가 비어 있을 때의 sentinel error다.
	ErrEmptyQuery = resolver.ErrEmptyQuery
)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return usageErrorf("incorrect number of arguments: expected %d, got %d", n, len(args))
	}
	return nil
}

// PrintError는 err를 사용자에게 보여줄 형식으로 w에 쓴다.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "go: error: %v\n", err)
	if isUsage(err) {
		fmt.Fprintln(w, "See 'go --help'.")
	}
}

func isUsage(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrEmptyQuery) ||
		errors.Is(err, store.ErrInvalidName) ||
		errors.Is(err, store.ErrEmptyPath) ||
		errors.Is(err, store.ErrInvalidPath)
}
