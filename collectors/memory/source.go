package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// Source is the opaque metrics capability the collector samples from.
// Refresh updates the counters; the accessors report the values captured
// by the most recent successful Refresh.
type Source interface {
	Refresh(ctx context.Context) error
	TotalMemory() uint64
	UsedMemory() uint64
	TotalSwap() uint64
	UsedSwap() uint64
}

// gopsutilSource reads live counters via gopsutil. It caches the last
// successful readings so accessors stay consistent between refreshes.
type gopsutilSource struct {
	vm   *mem.VirtualMemoryStat
	swap *mem.SwapMemoryStat
}

// NewSystemSource returns a Source backed by the host's live memory and
// swap counters.
func NewSystemSource() Source {
	return &gopsutilSource{}
}

func (s *gopsutilSource) Refresh(ctx context.Context) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("memory: read virtual memory: %w", err)
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("memory: read swap: %w", err)
	}
	s.vm = vm
	s.swap = swap
	return nil
}

func (s *gopsutilSource) TotalMemory() uint64 {
	if s.vm == nil {
		return 0
	}
	return s.vm.Total
}

func (s *gopsutilSource) UsedMemory() uint64 {
	if s.vm == nil {
		return 0
	}
	return s.vm.Used
}

func (s *gopsutilSource) TotalSwap() uint64 {
	if s.swap == nil {
		return 0
	}
	return s.swap.Total
}

func (s *gopsutilSource) UsedSwap() uint64 {
	if s.swap == nil {
		return 0
	}
	return s.swap.Used
}

// Compile-time interface compliance check.
var _ Source = (*gopsutilSource)(nil)
