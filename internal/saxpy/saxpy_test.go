package saxpy

import (
	"errors"
	"math"
	"testing"

	"github.com/aryankumar/execbench/internal/executor"
	"github.com/aryankumar/execbench/internal/util"
)

func TestNewProblem(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{name: "empty", n: 0},
		{name: "small", n: 3},
		{name: "negative size", n: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProblem(tt.n, 2, 1, 1)
			if tt.wantErr {
				if !errors.Is(err, util.ErrInvalidConfig) {
					t.Errorf("expected invalid config error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Len() != tt.n || len(p.Y) != tt.n || len(p.Z) != tt.n {
				t.Errorf("vector lengths = (%d, %d, %d), want %d", len(p.X), len(p.Y), len(p.Z), tt.n)
			}
		})
	}
}

func TestKernels_ProduceReference(t *testing.T) {
	var ex executor.Inline
	want := []float32{3, 3, 3}

	for _, k := range Kernels() {
		t.Run(k.Name, func(t *testing.T) {
			p, err := NewProblem(3, 2, 1, 1)
			if err != nil {
				t.Fatalf("NewProblem() error: %v", err)
			}

			if err := k.Kernel(ex, p); err != nil {
				t.Fatalf("kernel error: %v", err)
			}
			if err := Verify(p.Z, want); err != nil {
				t.Errorf("z = %v, want %v: %v", p.Z, want, err)
			}
		})
	}
}

func TestKernels_ByteIdenticalOutput(t *testing.T) {
	var ex executor.Inline
	var first []uint32

	for _, k := range Kernels() {
		p, err := NewProblem(1000, 42, 7, 13)
		if err != nil {
			t.Fatalf("NewProblem() error: %v", err)
		}
		if err := k.Kernel(ex, p); err != nil {
			t.Fatalf("%s: kernel error: %v", k.Name, err)
		}

		bits := make([]uint32, len(p.Z))
		for i, v := range p.Z {
			bits[i] = math.Float32bits(v)
		}

		if first == nil {
			first = bits
			continue
		}
		for i := range bits {
			if bits[i] != first[i] {
				t.Fatalf("%s: z[%d] bits %08x differ from %s bits %08x", k.Name, i, bits[i], NameForLoop, first[i])
			}
		}
	}
}

func TestKernels_EmptyProblem(t *testing.T) {
	var ex executor.Inline

	for _, k := range Kernels() {
		p, _ := NewProblem(0, 2, 1, 1)
		if err := k.Kernel(ex, p); err != nil {
			t.Errorf("%s: unexpected error on empty problem: %v", k.Name, err)
		}
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		z       []float32
		ref     []float32
		wantErr bool
	}{
		{name: "equal", z: []float32{3, 3}, ref: []float32{3, 3}},
		{name: "empty", z: nil, ref: []float32{}},
		{name: "value mismatch", z: []float32{3, 0}, ref: []float32{3, 3}, wantErr: true},
		{name: "length mismatch", z: []float32{3}, ref: []float32{3, 3}, wantErr: true},
		{name: "negative zero differs", z: []float32{float32(math.Copysign(0, -1))}, ref: []float32{0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.z, tt.ref)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !util.IsVerificationError(err) {
				t.Errorf("error should wrap ErrVerificationFailed, got %v", err)
			}
		})
	}
}

func TestReset(t *testing.T) {
	var ex executor.Inline
	p, _ := NewProblem(4, 2, 1, 1)

	ForLoop(ex, p)
	p.Reset()

	for i, v := range p.Z {
		if v != 0 {
			t.Errorf("z[%d] = %v after Reset, want 0", i, v)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		wantNames []string
		wantErr   bool
	}{
		{name: "all by default", names: nil, wantNames: Names()},
		{
			name:      "keeps reporting order",
			names:     []string{NameBulkAsyncExecute, NameForLoop},
			wantNames: []string{NameForLoop, NameBulkAsyncExecute},
		},
		{name: "unknown name", names: []string{NameForLoop, "parallel"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.names)
			if tt.wantErr {
				if !errors.Is(err, util.ErrUnknownCase) {
					t.Errorf("expected ErrUnknownCase, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("got %d kernels, want %d", len(got), len(tt.wantNames))
			}
			for i, k := range got {
				if k.Name != tt.wantNames[i] {
					t.Errorf("kernel %d = %q, want %q", i, k.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestBytesMoved(t *testing.T) {
	if got := BytesMoved(1 << 25); got != 3*4*(1<<25) {
		t.Errorf("BytesMoved() = %d, want %d", got, 3*4*(1<<25))
	}
	if got := BytesMoved(0); got != 0 {
		t.Errorf("BytesMoved(0) = %d, want 0", got)
	}
}
