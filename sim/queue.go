// Implements the FIFO wait queue a resource pool keeps while saturated.
// Requests are enqueued when all capacity units are busy and admitted
// strictly in arrival order as units free up.

package sim

// waitQueue is a FIFO queue of pending resource requests.
// No priority, no preemption: the head is always admitted first.
type waitQueue struct {
	queue []*PendingRequest
}

// Enqueue adds a request to the back of the wait queue.
func (wq *waitQueue) Enqueue(pr *PendingRequest) {
	wq.queue = append(wq.queue, pr)
}

// Len returns the number of requests in the queue.
func (wq *waitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the request at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *waitQueue) Peek() *PendingRequest {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Dequeue removes and returns the request at the front of the queue.
// Returns nil if the queue is empty.
func (wq *waitQueue) Dequeue() *PendingRequest {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head
}
