package buildfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rfhold/partpick/internal/backend"
	"github.com/rfhold/partpick/internal/catalog"
)

func TestParse(t *testing.T) {
	f, err := Parse([]byte(`
name: living room
selections:
  cpu: cpu-7600
  Motherboard: mb-b650
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "living room" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Selections[catalog.TypeCPU] != "cpu-7600" {
		t.Errorf("CPU = %q", f.Selections[catalog.TypeCPU])
	}
	if f.Selections[catalog.TypeMotherboard] != "mb-b650" {
		t.Errorf("Motherboard = %q", f.Selections[catalog.TypeMotherboard])
	}
	if len(f.Selections) != 2 {
		t.Errorf("expected 2 selections, got %d", len(f.Selections))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"unknown type", "selections:\n  Fan: fan-1\n", catalog.ErrUnknownComponentType},
		{"no selections", "name: empty\n", ErrEmptyBuild},
		{"empty id", "selections:\n  CPU: \"\"\n", nil},
		{"duplicate type in different case", "selections:\n  CPU: a\n  cpu: b\n", nil},
		{"not yaml", "selections: [unclosed\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	if err := os.WriteFile(path, []byte("selections:\n  GPU: gpu-1\n"), 0o600); err != nil {
		t.Fatalf("failed to write build file: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Selections[catalog.TypeGPU] != "gpu-1" {
		t.Errorf("GPU = %q", f.Selections[catalog.TypeGPU])
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func fakeCatalog() *backend.FakeCatalog {
	return &backend.FakeCatalog{
		Components: []catalog.Component{
			{ID: "cpu-1", Name: "Ryzen 5 7600", Type: catalog.TypeCPU, Price: 200},
			{ID: "cpu-2", Name: "Core i5", Type: catalog.TypeCPU, Price: 290},
			{ID: "gpu-1", Name: "RTX 4070", Type: catalog.TypeGPU, Price: 500},
		},
	}
}

func TestResolve(t *testing.T) {
	f := &File{Selections: map[catalog.ComponentType]string{
		catalog.TypeGPU: "gpu-1",
		catalog.TypeCPU: "cpu-1",
	}}
	fc := fakeCatalog()

	s, problems := f.Resolve(context.Background(), fc)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if s.TotalPrice() != 700 {
		t.Errorf("TotalPrice = %v, want 700", s.TotalPrice())
	}
	cpu, _ := s.Selection(catalog.TypeCPU)
	if cpu.Name != "Ryzen 5 7600" {
		t.Errorf("CPU = %q", cpu.Name)
	}

	calls := fc.ListCalls()
	if len(calls) != 2 || calls[0] != catalog.TypeCPU || calls[1] != catalog.TypeGPU {
		t.Errorf("expected one list per type in canonical order, got %v", calls)
	}
}

func TestResolve_UnknownPartIsSkipped(t *testing.T) {
	f := &File{Selections: map[catalog.ComponentType]string{
		catalog.TypeCPU: "cpu-404",
		catalog.TypeGPU: "gpu-1",
	}}
	s, problems := f.Resolve(context.Background(), fakeCatalog())
	if len(problems) != 1 || !errors.Is(problems[0], ErrUnknownPart) {
		t.Fatalf("expected one ErrUnknownPart, got %v", problems)
	}
	if s.HasSelection(catalog.TypeCPU) {
		t.Error("unknown CPU should not be selected")
	}
	if !s.HasSelection(catalog.TypeGPU) {
		t.Error("GPU should still be selected")
	}
}

func TestResolve_ListError(t *testing.T) {
	listErr := errors.New("connection refused")
	fc := &backend.FakeCatalog{ListErr: listErr}
	f := &File{Selections: map[catalog.ComponentType]string{catalog.TypeCPU: "cpu-1"}}
	s, problems := f.Resolve(context.Background(), fc)
	if len(problems) != 1 || !errors.Is(problems[0], listErr) {
		t.Fatalf("expected wrapped list error, got %v", problems)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty session, got %d selections", s.Len())
	}
}
