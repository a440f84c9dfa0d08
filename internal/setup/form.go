package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// skipChoice는 "설치하지 않음" 옵션의 값이다.
const skipChoice = ""

// RunInstallSelect는 설치 위치 선택 UI를 표시한다.
func (h *HuhFormRunner) RunInstallSelect(title string, candidates []string) (string, error) {
	options := make([]huh.Option[string], 0, len(candidates)+1)
	for _, c := range candidates {
		options = append(options, huh.NewOption(c, c))
	}
	options = append(options, huh.NewOption("No, I'll do it myself", skipChoice))

	selected := skipChoice
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunInstallSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
