package sim

// FrameQueue is an engine.Scheduler whose callbacks run when the host calls
// RunFrame, once per host frame.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) RequestNextFrame(callback func()) {
	if callback == nil {
		return
	}
	q.pending = append(q.pending, callback)
}

// RunFrame runs the callbacks queued before the call. Callbacks queued while
// running wait for the next frame. It returns the number of callbacks run.
func (q *FrameQueue) RunFrame() int {
	batch := q.pending
	q.pending = nil
	for _, cb := range batch {
		cb()
	}
	return len(batch)
}

func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
