package protocols

import (
	"testing"

	"github.com/starkfib/stark-fib/internal/starkfib/core"
)

func TestExtendTracePreservesOriginalSamples(t *testing.T) {
	field := core.DefaultPrimeField
	trace := FibonacciTrace(6, field.NewElementFromInt64(1), nil)

	columns, domain := ExtendTrace(trace, 4)

	if len(columns) != 3 {
		t.Fatalf("len(columns) = %d, want 3", len(columns))
	}
	if domain.Size() != 6 {
		t.Fatalf("original domain size = %d, want 6", domain.Size())
	}
	for col := range columns {
		if len(columns[col]) != 24 {
			t.Fatalf("column %d length = %d, want 24", col, len(columns[col]))
		}
		for row := 0; row < 6; row++ {
			if !columns[col][row].Equals(trace[row][col]) {
				t.Errorf("column %d row %d = %v, want original value %v", col, row, columns[col][row], trace[row][col])
			}
		}
	}
}

func TestExtendTraceRejectsExtensionFactorOfOne(t *testing.T) {
	field := core.DefaultPrimeField
	trace := FibonacciTrace(4, field.One(), nil)
	defer func() {
		if recover() == nil {
			t.Fatal("ExtendTrace with extensionFactor <= 1 should panic")
		}
	}()
	ExtendTrace(trace, 1)
}
