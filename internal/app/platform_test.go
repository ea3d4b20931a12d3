package app

import (
	"errors"
	"reflect"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestDetectEditorCommand(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		configured string
		env        map[string]string
		available  []string
		want       []string
		wantOK     bool
	}{
		{
			name:       "configured editor wins",
			goos:       "linux",
			configured: "hx",
			env:        map[string]string{"VISUAL": "code --wait"},
			available:  []string{"hx", "code"},
			want:       []string{"/usr/bin/hx"},
			wantOK:     true,
		},
		{
			name:      "visual before editor",
			goos:      "linux",
			env:       map[string]string{"VISUAL": "code --wait", "EDITOR": "nano"},
			available: []string{"code", "nano"},
			want:      []string{"/usr/bin/code", "--wait"},
			wantOK:    true,
		},
		{
			name:      "missing visual falls through to editor",
			goos:      "linux",
			env:       map[string]string{"VISUAL": "subl", "EDITOR": "nano"},
			available: []string{"nano"},
			want:      []string{"/usr/bin/nano"},
			wantOK:    true,
		},
		{
			name:      "vim default",
			goos:      "linux",
			available: []string{"vim", "nano"},
			want:      []string{"/usr/bin/vim"},
			wantOK:    true,
		},
		{
			name:      "nano when vim missing",
			goos:      "darwin",
			available: []string{"nano"},
			want:      []string{"/usr/bin/nano"},
			wantOK:    true,
		},
		{
			name:      "windows notepad",
			goos:      "windows",
			available: []string{"notepad.exe", "vim"},
			want:      []string{"/usr/bin/notepad.exe"},
			wantOK:    true,
		},
		{
			name:   "nothing available",
			goos:   "linux",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectEditorCommandInternal(tt.goos, tt.configured, envFrom(tt.env), fakeLookPath(tt.available...))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectShellCommand(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		configured string
		env        map[string]string
		want       []string
	}{
		{"configured", "linux", "fish", map[string]string{"SHELL": "/bin/zsh"}, []string{"fish"}},
		{"from SHELL", "linux", "", map[string]string{"SHELL": "/bin/zsh"}, []string{"/bin/zsh"}},
		{"default", "linux", "", nil, []string{"/bin/sh"}},
		{"windows comspec", "windows", "", map[string]string{"COMSPEC": `C:\Windows\system32\cmd.exe`}, []string{`C:\Windows\system32\cmd.exe`}},
		{"windows default", "windows", "", map[string]string{"SHELL": "/bin/zsh"}, []string{"cmd.exe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectShellCommandInternal(tt.goos, tt.configured, envFrom(tt.env))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCommandHonoursQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"vim", []string{"vim"}},
		{"code --wait", []string{"code", "--wait"}},
		{`"my editor" -n`, []string{"my editor", "-n"}},
		{`emacs -e '(message "hi")'`, []string{"emacs", "-e", `(message "hi")`}},
	}
	for _, tt := range tests {
		if got := parseCommand(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("parseCommand(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeClipboardPathWindows(t *testing.T) {
	input := `C:\Users\me/project/sub/file.txt`
	got := normalizeClipboardPath(input, "windows")
	want := `C:\Users\me\project\sub\file.txt`
	if got != want {
		t.Fatalf("normalizeClipboardPath(%q, windows) = %q, want %q", input, got, want)
	}
}

func TestNormalizeClipboardPathUnix(t *testing.T) {
	input := "/tmp/project/dir/../file.txt"
	got := normalizeClipboardPath(input, "linux")
	want := "/tmp/project/file.txt"
	if got != want {
		t.Fatalf("normalizeClipboardPath(%q, linux) = %q, want %q", input, got, want)
	}
}
