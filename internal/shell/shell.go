package shell

import (
	"fmt"
	"os"
	"strings"
)

// Family는 생성할 스크립트의 셸 계열이다.
type Family int

const (
	// Posix는 sh/bash/zsh/fish가 source할 수 있는 스크립트다.
	Posix Family = iota
	// Batch는 Windows cmd.exe가 call하는 배치 파일이다.
	Batch
)

func (f Family) String() string {
	switch f {
	case Posix:
		return "posix"
	case Batch:
		return "batch"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Script는 target으로 이동하는 스크립트를 생성한다.
// target이 비어 있으면 아무것도 하지 않는 스크립트를 반환한다.
func Script(family Family, target string) string {
	var b strings.Builder
	switch family {
	case Batch:
		b.WriteString("@echo off\r\n")
		if target != "" {
			if drive := driveOf(target); drive != "" {
				fmt.Fprintf(&b, "call %s\r\n", drive)
			}
			fmt.Fprintf(&b, "call cd \"%s\"\r\n", target)
			fmt.Fprintf(&b, "title \"%s\"\r\n", target)
		}
	default:
		b.WriteString("#!/bin/sh\n")
		if target != "" {
			fmt.Fprintf(&b, "cd %s\n", quote(target))
		}
	}
	return b.String()
}

// Emit는 path를 Script 결과로 덮어쓴다.
func Emit(path string, family Family, target string) error {
	if err := os.WriteFile(path, []byte(Script(family, target)), 0600); err != nil {
		return fmt.Errorf("shell.Emit: %w", err)
	}
	return nil
}

// quote는 s를 POSIX single quote로 감싼다.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// driveOf는 "D:\..." 형태 경로의 드라이브 문자("D:")를 반환한다.
func driveOf(path string) string {
	if len(path) >= 2 && path[1] == ':' {
		c := path[0]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return path[:2]
		}
	}
	return ""
}
