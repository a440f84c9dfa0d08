package setup

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunInstallSelect는 driver를 설치할 위치를 고르는 UI를 표시한다.
	// 설치하지 않기로 하면 빈 문자열을 반환한다.
	RunInstallSelect(title string, candidates []string) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
