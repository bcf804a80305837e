package sync

import "sort"

// trimEvents orders a scan range's events and shrinks oversized batches on a
// block boundary. Blocks are always included whole: walking blocks in order,
// a new block is started only while the running count is below maxEvents, so
// the block that crosses the cap still lands in full. A single block larger
// than maxEvents is therefore never split and never starves the checkpoint.
// Returns the retained events and the block the checkpoint should advance
// to: the original endBlock when nothing was trimmed, else the last fully
// included block.
func trimEvents(events []Event, endBlock uint64, maxEvents int) ([]Event, uint64) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Origin.Less(events[j].Origin)
	})

	index := 0
	for index < maxEvents && index < len(events) {
		// Include the entire next block.
		includeBlock := events[index].Origin.BlockNumber
		index++
		for index < len(events) && events[index].Origin.BlockNumber == includeBlock {
			index++
		}
	}

	// Nothing to trim.
	if index >= len(events) {
		return events, endBlock
	}
	return events[:index], events[index-1].Origin.BlockNumber
}
