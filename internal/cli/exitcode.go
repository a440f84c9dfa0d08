package cli

// ExitCode는 gocd의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. help와 version도 포함한다.
	ExitSuccess ExitCode = 0
	// ExitFailure는 모든 에러에 공통인 종료 코드다.
	ExitFailure ExitCode = 1
)

// MapExitCode는 err에 대응하는 종료 코드를 반환한다.
// shell driver는 종료 코드를 구분하지 않으므로 에러는 모두 ExitFailure다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
