package message

import "context"

// Collect blocks until the first record arrives or ctx is done, then drains
// whatever is immediately available, returning at most limit records.
func Collect(ctx context.Context, records <-chan *ConsumerRecord, limit int) []*ConsumerRecord {
	if limit <= 0 {
		limit = 1
	}
	collected := make([]*ConsumerRecord, 0, limit)
	select {
	case record, ok := <-records:
		if !ok {
			return collected
		}
		collected = append(collected, record)
	case <-ctx.Done():
		return collected
	}
	for len(collected) < limit {
		select {
		case record, ok := <-records:
			if !ok {
				return collected
			}
			collected = append(collected, record)
		default:
			return collected
		}
	}
	return collected
}
