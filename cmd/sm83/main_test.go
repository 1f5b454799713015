package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestAssign(t *testing.T) {
	regs := cpu.PowerUp(types.GB)
	for _, a := range []string{"a=0x42", "F=0xFF", "hl=0xC000", "de = 4660", "sp=0xDFFF", "pc=0b1", "nf=true", "zf=0"} {
		if err := assign(&regs, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}

	want := cpu.PowerUp(types.GB)
	want.A = 0x42
	want.F = 0x70 // F=0xF0 then N set and Z cleared
	want.H, want.L = 0xC0, 0x00
	want.D, want.E = 0x12, 0x34
	want.SP = 0xDFFF
	want.PC = 0x0001
	if diff := cmp.Diff(want, regs); diff != "" {
		t.Errorf("unexpected registers (-want +got):\n%s", diff)
	}

	for _, a := range []string{"a", "a=0x100", "hl=0x10000", "ix=1", "zf=maybe", "b=-1"} {
		if err := assign(&regs, a); err == nil {
			t.Errorf("%s: expected an error", a)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sm83.toml")
	cfg := "model = \"cgb\"\nsnapshot_dir = \"" + filepath.ToSlash(filepath.Join(dir, "states")) + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	exec := func(t *testing.T, args ...string) string {
		t.Helper()
		var stdout, stderr bytes.Buffer
		if err := run(append([]string{"--config", cfgPath, "--log-level", "error"}, args...), &stdout, &stderr); err != nil {
			t.Fatalf("%v: %v (stderr: %s)", args, err, stderr.String())
		}
		return stdout.String()
	}

	t.Run("powerup", func(t *testing.T) {
		out := exec(t, "powerup")
		want := "GBC AF=11B0 BC=0013 DE=00D8 HL=014D SP=FFFE PC=0100 [ZnHC]\n"
		if out != want {
			t.Errorf("expected %q, got %q", want, out)
		}
		if out := exec(t, "powerup", "--model", "pocket"); !strings.HasPrefix(out, "GBP AF=FFB0") {
			t.Errorf("unexpected output %q", out)
		}
	})
	t.Run("save and load file", func(t *testing.T) {
		path := filepath.Join(dir, "explicit.state")
		exec(t, "save", "--model", "dmg", "--set", "bc=0xBEEF", "--set", "cf=false", path)

		out := exec(t, "load", path)
		want := "GB AF=01A0 BC=BEEF DE=00D8 HL=014D SP=FFFE PC=0100 [ZnHc]\n"
		if out != want {
			t.Errorf("expected %q, got %q", want, out)
		}
	})
	t.Run("save and load latest", func(t *testing.T) {
		exec(t, "save", "--set", "pc=0x150")
		out := exec(t, "load")
		if !strings.HasPrefix(out, "GBC ") || !strings.Contains(out, "PC=0150") {
			t.Errorf("unexpected output %q", out)
		}
	})
	t.Run("bad model", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := run([]string{"--config", cfgPath, "powerup", "--model", "agb"}, &stdout, &stderr); err == nil {
			t.Errorf("expected an error for model agb")
		}
	})
}
