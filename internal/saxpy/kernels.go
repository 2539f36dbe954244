package saxpy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aryankumar/execbench/internal/executor"
	"github.com/aryankumar/execbench/internal/util"
)

// Kernel computes p.Z from p.X and p.Y using ex
type Kernel func(ex executor.Inline, p *Problem) error

// NamedKernel pairs a kernel with the name it is reported under
type NamedKernel struct {
	Name   string
	Kernel Kernel
}

// Kernel names
const (
	NameForLoop          = "for_loop"
	NameSyncExecute      = "sync_execute"
	NameAsyncExecute     = "async_execute"
	NameBulkSyncExecute  = "bulk_sync_execute"
	NameBulkAsyncExecute = "bulk_async_execute"
)

// Kernels returns every kernel in reporting order, reference loop first
func Kernels() []NamedKernel {
	return []NamedKernel{
		{Name: NameForLoop, Kernel: ForLoop},
		{Name: NameSyncExecute, Kernel: SyncExecute},
		{Name: NameAsyncExecute, Kernel: AsyncExecute},
		{Name: NameBulkSyncExecute, Kernel: BulkSyncExecute},
		{Name: NameBulkAsyncExecute, Kernel: BulkAsyncExecute},
	}
}

// Names returns the kernel names in reporting order
func Names() []string {
	kernels := Kernels()
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name
	}
	return names
}

// Select returns the kernels matching names, in reporting order
// An empty names slice selects every kernel
func Select(names []string) ([]NamedKernel, error) {
	all := Kernels()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]NamedKernel, 0, len(names))
	for _, k := range all {
		if wanted[k.Name] {
			selected = append(selected, k)
			delete(wanted, k.Name)
		}
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s (available: %s)",
			util.ErrUnknownCase, strings.Join(unknown, ", "), strings.Join(Names(), ", "))
	}
	return selected, nil
}

// ForLoop is the reference kernel; it ignores the executor
func ForLoop(_ executor.Inline, p *Problem) error {
	for i := range p.Z {
		p.Z[i] = p.A*p.X[i] + p.Y[i]
	}
	return nil
}

// SyncExecute issues one SyncExecute per element
func SyncExecute(ex executor.Inline, p *Problem) error {
	for i := range p.Z {
		if err := ex.SyncExecute(func() error {
			p.Z[i] = p.A*p.X[i] + p.Y[i]
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

// AsyncExecute issues one AsyncExecute per element and waits on each future
func AsyncExecute(ex executor.Inline, p *Problem) error {
	for i := range p.Z {
		f := ex.AsyncExecute(func() error {
			p.Z[i] = p.A*p.X[i] + p.Y[i]
			return nil
		})
		f.Wait()
		if _, err := f.Get(); err != nil {
			return err
		}
	}
	return nil
}

// BulkSyncExecute covers every element with a single bulk call
func BulkSyncExecute(ex executor.Inline, p *Problem) error {
	return executor.BulkSyncExecute(ex, p.element, p.Len(), void, void)
}

// BulkAsyncExecute covers every element with a single bulk call and waits on its future
func BulkAsyncExecute(ex executor.Inline, p *Problem) error {
	f := executor.BulkAsyncExecute(ex, p.element, p.Len(), void, void)
	f.Wait()
	_, err := f.Get()
	return err
}

func (p *Problem) element(i int, _ *executor.Void, _ *executor.Void) error {
	p.Z[i] = p.A*p.X[i] + p.Y[i]
	return nil
}

func void() executor.Void {
	return executor.Void{}
}
