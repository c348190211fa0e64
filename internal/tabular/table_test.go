package tabular

import (
	"testing"
	"time"
)

func TestCloneBreaksAliasing(t *testing.T) {
	src := New([]string{"a", "b"}, [][]any{{1.0, "x"}, {2.0, "y"}})
	dup := src.Clone()

	dup.Columns[0] = "changed"
	dup.Rows[0][0] = 99.0

	if src.Columns[0] != "a" {
		t.Errorf("source column renamed by clone edit: %v", src.Columns[0])
	}
	if src.Rows[0][0] != 1.0 {
		t.Errorf("source cell changed by clone edit: %v", src.Rows[0][0])
	}
}

func TestColumnKind(t *testing.T) {
	tests := []struct {
		name   string
		values [][]any
		want   Kind
	}{
		{"floats", [][]any{{1.5}, {2.0}}, KindNumeric},
		{"mixed int widths", [][]any{{int32(1)}, {int64(2)}, {uint8(3)}}, KindNumeric},
		{"numeric with nulls", [][]any{{1.0}, {nil}}, KindNumeric},
		{"timestamps", [][]any{{time.Now()}, {nil}}, KindDatetime},
		{"strings", [][]any{{"a"}, {"b"}}, KindOther},
		{"mixed numeric and string", [][]any{{1.0}, {"b"}}, KindOther},
		{"all nulls", [][]any{{nil}, {nil}}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New([]string{"c"}, tt.values)
			if got := tbl.ColumnKind(0); got != tt.want {
				t.Errorf("ColumnKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := New([]string{"x", "y"}, nil)
	if got := tbl.ColumnIndex("y"); got != 1 {
		t.Errorf("ColumnIndex(y) = %d, want 1", got)
	}
	if got := tbl.ColumnIndex("missing"); got != -1 {
		t.Errorf("ColumnIndex(missing) = %d, want -1", got)
	}
}
