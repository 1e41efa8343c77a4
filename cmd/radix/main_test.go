package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"v.io/x/lib/cmdline"

	"github.com/funvibe/radixquest/internal/config"
	"github.com/funvibe/radixquest/internal/value"
	"github.com/funvibe/radixquest/pkg/radix"
)

func resetFlags() {
	common = commonFlags{}
	flagDump, flagNoHistory, flagRemote = false, false, ""
	flagAddr, flagHistoryN, flagClear = "", 0, false
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radix.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	file, err := config.ParseConfig([]byte("mode: int\nbit_width: 16\nsigned: false\ndisplay_base: hex\n"), "radix.yaml")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	tests := []struct {
		name  string
		flags commonFlags
		want  value.Options
	}{
		{"file only", commonFlags{},
			value.Options{InputBase: value.InputAuto, DisplayBase: value.DisplayHex, Mode: value.ModeInteger, BitWidth: 16}},
		{"flags override", commonFlags{mode: "float", width: 8, displayBase: "all", inputBase: "2", signed: optionalBool{set: true, value: true}},
			value.Options{InputBase: value.InputBin, DisplayBase: value.DisplayAll, Mode: value.ModeFloat, BitWidth: 8, Signed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := resolve(file, &tt.flags)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if s.opts != tt.want {
				t.Errorf("opts = %+v, want %+v", s.opts, tt.want)
			}
			if s.color != "auto" {
				t.Errorf("color = %q, want auto", s.color)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags commonFlags
	}{
		{"bad base", commonFlags{inputBase: "7"}},
		{"bad mode", commonFlags{mode: "complex"}},
		{"bad width", commonFlags{mode: "int", width: -3}},
		{"bad color", commonFlags{color: "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolve(config.Default(), &tt.flags); err == nil {
				t.Errorf("resolve(%+v) succeeded, want error", tt.flags)
			}
		})
	}
}

func TestOptionalBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true}, {"on", true}, {"yes", true},
		{"false", false}, {"off", false}, {"no", false},
	}
	for _, tt := range tests {
		var b optionalBool
		if err := b.Set(tt.in); err != nil {
			t.Fatalf("Set(%q): %v", tt.in, err)
		}
		if !b.set || b.value != tt.want {
			t.Errorf("Set(%q) = %+v, want value %t", tt.in, b, tt.want)
		}
	}
	var b optionalBool
	if err := b.Set("maybe"); err == nil {
		t.Errorf("Set(maybe) succeeded, want error")
	}
	if b.String() != "" {
		t.Errorf("String() of unset flag = %q, want empty", b.String())
	}
}

func TestPrinterResult(t *testing.T) {
	var out bytes.Buffer
	p := &printer{out: &out, errOut: &out}
	p.result(radix.Output{
		Primary:    "255",
		Alternates: []radix.Entry{{Label: "Hex", Text: "0xFF"}},
		Bits:       "1111 1111",
		Note:       "note",
	})
	want := "255\n" +
		"  Hex            0xFF\n" +
		"  Bits           1111 1111\n" +
		"  note\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinterColor(t *testing.T) {
	var out bytes.Buffer
	p := newPrinter(&out, &out, "always")
	p.error(errors.New("boom"))
	if got, want := out.String(), ansiRed+"boom"+ansiReset+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if colorEnabled("auto", &out) {
		t.Errorf("colorEnabled(auto) on a buffer = true, want false")
	}
	if colorEnabled("never", os.Stdout) {
		t.Errorf("colorEnabled(never) = true, want false")
	}
}

func TestSession(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &session{opts: value.DefaultOptions(), p: &printer{out: &out, errOut: &errOut}}
	input := strings.Join([]string{
		"1 + 2",
		":mode int",
		":width 8",
		":signed off",
		"-1",
		":width 0",
		":show",
		":bogus x",
		":quit",
		"3 * 3",
	}, "\n")
	if err := s.scan(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("scan: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if lines[0] != "3" {
		t.Errorf("first result = %q, want 3", lines[0])
	}
	if !strings.Contains(out.String(), "\n255\n") {
		t.Errorf("output %q lacks the unsigned 8-bit result 255", out.String())
	}
	if !strings.Contains(out.String(), "mode=int width=8 signed=false in=auto out=10") {
		t.Errorf("output %q lacks the settings line", out.String())
	}
	if strings.Contains(out.String(), "\n9\n") {
		t.Errorf("expression after :quit was evaluated")
	}
	if got := strings.Count(errOut.String(), "\n"); got != 2 {
		t.Errorf("got %d errors, want 2: %q", got, errOut.String())
	}
}

func TestEvalCommand(t *testing.T) {
	resetFlags()
	path := writeConfig(t, "color: never\nhistory:\n  disabled: true\n")

	var stdout, stderr bytes.Buffer
	env := &cmdline.Env{Stdout: &stdout, Stderr: &stderr}
	args := []string{"eval", "-config", path, "-mode", "int", "-width", "8", "-signed=false", "0xFF + 1"}
	if err := cmdline.ParseAndRun(cmdRadix, env, args); err != nil {
		t.Fatalf("eval: %v\n%s", err, stderr.String())
	}
	got := stdout.String()
	if !strings.HasPrefix(got, "0\n") {
		t.Errorf("output = %q, want primary 0", got)
	}
	if !strings.Contains(got, "0000 0000") {
		t.Errorf("output = %q, want bit pattern", got)
	}
}

func TestEvalCommandErrors(t *testing.T) {
	resetFlags()
	path := writeConfig(t, "color: never\nhistory:\n  disabled: true\n")

	var stdout, stderr bytes.Buffer
	env := &cmdline.Env{Stdout: &stdout, Stderr: &stderr}
	err := cmdline.ParseAndRun(cmdRadix, env, []string{"eval", "-config", path, "1 +", "2 * 4"})
	if code, ok := err.(cmdline.ErrExitCode); !ok || code != 1 {
		t.Fatalf("eval error = %v, want exit code 1", err)
	}
	if stdout.String() != "8\n" {
		t.Errorf("stdout = %q, want 8", stdout.String())
	}
	if !strings.Contains(stderr.String(), "SyntaxError [P004]") {
		t.Errorf("stderr = %q, want a P004 error", stderr.String())
	}
}

func TestEvalDump(t *testing.T) {
	var out bytes.Buffer
	if err := dump(&out, "1+2"); err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{"token.Token", "== 1+2 ==", "ADD"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("dump output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestHistoryCommand(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	path := writeConfig(t, "color: never\nhistory:\n  path: "+filepath.Join(dir, "h.db")+"\n")

	var stdout, stderr bytes.Buffer
	env := &cmdline.Env{Stdout: &stdout, Stderr: &stderr}
	if err := cmdline.ParseAndRun(cmdRadix, env, []string{"eval", "-config", path, "6*7"}); err != nil {
		t.Fatalf("eval: %v", err)
	}
	stdout.Reset()
	if err := cmdline.ParseAndRun(cmdRadix, env, []string{"history", "-config", path}); err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(stdout.String(), "6*7 = 42") {
		t.Errorf("history = %q, want the 6*7 entry", stdout.String())
	}

	stdout.Reset()
	resetFlags()
	if err := cmdline.ParseAndRun(cmdRadix, env, []string{"history", "-config", path, "-clear"}); err != nil {
		t.Fatalf("history -clear: %v", err)
	}
	resetFlags()
	if err := cmdline.ParseAndRun(cmdRadix, env, []string{"history", "-config", path}); err != nil {
		t.Fatalf("history: %v", err)
	}
	if stdout.String() != "" {
		t.Errorf("history after clear = %q, want empty", stdout.String())
	}
}
