package app

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"unicode"

	"github.com/kk-code-lab/mfm/internal/config"
)

func detectEditorCommand(configured string) ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, configured, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos, configured string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{configured, getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := parseCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveExecutable(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}

	var defaults [][]string
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{
			{"notepad.exe"},
		}
	} else {
		defaults = [][]string{
			{"vim"},
			{"nano"},
		}
	}

	for _, def := range defaults {
		if resolved, ok := resolveExecutable(def[0], lookPath); ok {
			return append([]string{resolved}, def[1:]...), true
		}
	}

	return nil, false
}

func detectShellCommand(configured string) []string {
	return detectShellCommandInternal(runtime.GOOS, configured, os.Getenv)
}

// detectShellCommandInternal never fails: it falls back to the platform's
// default shell without checking that it exists.
func detectShellCommandInternal(goos, configured string, getenv func(string) string) []string {
	if args := parseCommand(configured); len(args) > 0 {
		return args
	}
	if strings.EqualFold(goos, "windows") {
		if args := parseCommand(getenv("COMSPEC")); len(args) > 0 {
			return args
		}
		return []string{"cmd.exe"}
	}
	if args := parseCommand(getenv("SHELL")); len(args) > 0 {
		return args
	}
	return []string{"/bin/sh"}
}

// parseCommand splits cmd into arguments, honouring single and double quotes.
// A leading ~ in the program name is expanded.
func parseCommand(cmd string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range strings.TrimSpace(cmd) {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
			inArg = true
		case quote == 0 && unicode.IsSpace(r):
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		if expanded, err := config.ExpandUserPath(args[0]); err == nil {
			args[0] = expanded
		}
	}
	return args
}

func resolveExecutable(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}
	path, err := lookPath(cmd)
	if err != nil {
		return "", false
	}
	return path, true
}
