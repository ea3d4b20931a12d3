package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
)

type ParentShellFunc func() string

// Config controls where the snippet is written and which files it refers to.
type Config struct {
	DetectParent ParentShellFunc
	// Executable is the mfm binary the function invokes. Defaults to
	// os.Executable.
	Executable string
	// LastDirFile is the absolute path mfm writes its final directory to.
	LastDirFile string
	Out         io.Writer
}

// PrintSetup writes a shell function named mfm that runs the browser and
// then changes into the directory it was showing on quit.
func PrintSetup(shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.LastDirFile == "" {
		return fmt.Errorf("no last directory file configured")
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "mfm"
		}
	}

	var err error
	switch shell {
	case "fish":
		_, err = fmt.Fprintf(out, `function mfm
    command %s $argv
    set -l mfm_status $status
    if test -f %s
        set -l dest (cat %s 2>/dev/null)
        if test -d "$dest"
            builtin cd "$dest"
        end
    end
    return $mfm_status
end
`, posixQuote(exe), posixQuote(cfg.LastDirFile), posixQuote(cfg.LastDirFile))
	case "pwsh":
		_, err = fmt.Fprintf(out, `function mfm {
    & %s @args
    $mfmStatus = $LASTEXITCODE
    $lastDir = %s
    if (Test-Path $lastDir -PathType Leaf) {
        $dest = (Get-Content $lastDir -Raw -ErrorAction SilentlyContinue)
        if ($dest) { $dest = $dest.Trim() }
        if ($dest -and (Test-Path $dest -PathType Container)) {
            Set-Location $dest
        }
    }
    $global:LASTEXITCODE = $mfmStatus
}
`, pwshQuote(exe), pwshQuote(cfg.LastDirFile))
	case "tcsh", "csh":
		_, err = fmt.Fprintf(out, "alias mfm '%s \\!* && cd \"`cat %s`\"'\n", exe, cfg.LastDirFile)
	case "cmd":
		_, err = fmt.Fprintf(out, `:: Save as mfm.cmd and run "call mfm.cmd" from cmd.exe sessions.
@echo off
"%s" %%*
if exist "%s" (
    for /f "usebackq delims=" %%%%d in ("%s") do (
        if not "%%%%d"=="" cd /d "%%%%d"
    )
)
`, exe, cfg.LastDirFile, cfg.LastDirFile)
	default:
		_, err = fmt.Fprintf(out, `mfm() {
    command %s "$@"
    mfm_status=$?
    if [ -f %s ]; then
        mfm_dest=$(cat %s 2>/dev/null)
        if [ -d "$mfm_dest" ]; then
            cd "$mfm_dest" || return
        fi
    fi
    return $mfm_status
}
`, posixQuote(exe), posixQuote(cfg.LastDirFile), posixQuote(cfg.LastDirFile))
	}
	return err
}

func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func pwshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell != "" {
			switch shell {
			case "pwsh", "cmd":
				return shell
			}
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
