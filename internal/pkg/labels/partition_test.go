package labels

import (
	"reflect"
	"testing"
)

func TestPartitionSheets(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
		want [][]int64
	}{
		{
			name: "empty selection yields no sheets",
			ids:  nil,
			want: nil,
		},
		{
			name: "single id yields one sheet",
			ids:  []int64{7},
			want: [][]int64{{7}},
		},
		{
			name: "exactly one full sheet",
			ids:  []int64{1, 2, 3, 4},
			want: [][]int64{{1, 2, 3, 4}},
		},
		{
			name: "ten ids yield 4-4-2",
			ids:  []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want: [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10}},
		},
		{
			name: "order is preserved",
			ids:  []int64{42, 3, 99, 1, 8},
			want: [][]int64{{42, 3, 99, 1}, {8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PartitionSheets(tt.ids)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PartitionSheets(%v) = %v, want %v", tt.ids, got, tt.want)
			}
		})
	}
}

func TestPartitionSheetCount(t *testing.T) {
	for n := 0; n <= 25; n++ {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i + 1)
		}

		groups := PartitionSheets(ids)

		wantGroups := (n + SheetSize - 1) / SheetSize
		if len(groups) != wantGroups {
			t.Fatalf("n=%d: got %d groups, want %d", n, len(groups), wantGroups)
		}

		total := 0
		for i, g := range groups {
			if len(g) == 0 || len(g) > SheetSize {
				t.Fatalf("n=%d: group %d has invalid size %d", n, i, len(g))
			}
			if i < len(groups)-1 && len(g) != SheetSize {
				t.Fatalf("n=%d: non-final group %d is short (%d)", n, i, len(g))
			}
			total += len(g)
		}
		if total != n {
			t.Fatalf("n=%d: groups cover %d ids", n, total)
		}
	}
}

func TestPartitionCopiesInput(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}
	groups := Partition(ids, 4)

	groups[0][0] = 99
	if ids[0] != 1 {
		t.Error("Partition must not alias the input slice")
	}
}

func TestPartitionInvalidSize(t *testing.T) {
	if got := Partition([]int64{1, 2}, 0); got != nil {
		t.Errorf("Partition with size 0 = %v, want nil", got)
	}
}
