package print

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterLines(t *testing.T) {
	tests := []struct {
		name  string
		write func(p *Printer)
		want  []string
	}{
		{"success", func(p *Printer) { p.Success("loaded %s", "com.pezshkyar.fazli") }, []string{"✓", "loaded com.pezshkyar.fazli"}},
		{"error", func(p *Printer) { p.Error("invalid range: %d", 0) }, []string{"✖", "invalid range: 0"}},
		{"warning", func(p *Printer) { p.Warning("targetApiLevel above compile") }, []string{"⚠", "targetApiLevel above compile"}},
		{"info", func(p *Printer) { p.Info("Importing %s", "app/build.gradle.kts") }, []string{"ℹ", "Importing app/build.gradle.kts"}},
		{"section", func(p *Printer) { p.Section("SDK") }, []string{"SDK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(New(&buf))
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q should contain %q", out, want)
				}
			}
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("output %q should end with a newline", out)
			}
		})
	}
}

func TestPrinterKeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.KeyValue("compileApiLevel", 33)
	p.KeyValue("toolchainVersion", "")

	out := buf.String()
	if !strings.Contains(out, "compileApiLevel") || !strings.Contains(out, "33") {
		t.Errorf("output %q should contain key and value", out)
	}
	if !strings.Contains(out, "-") {
		t.Errorf("empty value should print as '-', got %q", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 2 lines, got %d", n)
	}
}
