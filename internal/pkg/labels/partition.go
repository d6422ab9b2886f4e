// Package labels holds the pure parts of the label workflow: partitioning a
// selection into 4-up sheets and rendering the printable HTML documents.
package labels

// SheetSize is the physical constraint of a 4-up label sheet.
const SheetSize = 4

// Partition splits ids into consecutive groups of at most size, preserving
// order. For N ids it yields ceil(N/size) groups; only the last group may be
// short. A nil or empty input yields no groups.
func Partition(ids []int64, size int) [][]int64 {
	if size <= 0 || len(ids) == 0 {
		return nil
	}

	groups := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		group := make([]int64, end-start)
		copy(group, ids[start:end])
		groups = append(groups, group)
	}
	return groups
}

// PartitionSheets partitions ids into 4-up sheets.
func PartitionSheets(ids []int64) [][]int64 {
	return Partition(ids, SheetSize)
}
