package universe

import (
	"math/rand"
	"testing"
)

var (
	testTemplate = []Coords{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}
)

const (
	width  = 200
	height = 200
)

func universeTick(u *Universe, b *testing.B) {
	u.Settle(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Tick()
	}
}

func Benchmark_Tick(b *testing.B) {
	for _, e := range EngineNames() {
		b.Run(e, func(b *testing.B) {
			universeTick(newRunning(b, e, width, height, nil), b)
		})
	}
}

func Benchmark_TickRandom(b *testing.B) {
	for _, e := range EngineNames() {
		b.Run(e, func(b *testing.B) {
			u := newRunning(b, e, width, height, nil)
			u.SettleRandom(rand.New(rand.NewSource(42)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}
