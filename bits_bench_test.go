package hwbits

import "testing"

// The operators must not allocate fresh backing storage per call; scratch
// reuse keeps the hot path flat. Run with -benchmem to watch allocs/op.

func BenchmarkAnd(b *testing.B) {
	x := New(1024, 0).Not()
	y := New(1024, 0).Not().Slr(New(16, 512))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.And(y)
	}
}

func BenchmarkSar(b *testing.B) {
	x := New(1024, 0).Not()
	amt := New(8, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Sar(amt)
	}
}

func BenchmarkAdd(b *testing.B) {
	x := New(256, 0xFFFFFFFFFFFFFFFF)
	y := New(256, 0x0123456789ABCDEF)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}

func BenchmarkAssignRange(b *testing.B) {
	x := New(1024, 0).Not()
	src := New(64, 0xCAFEF00D)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.AssignRange(700, 637, src)
	}
}

func BenchmarkReadWord(b *testing.B) {
	x := New(1024, 0).Not()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ReadWord[uint64](x, 7)
	}
}
