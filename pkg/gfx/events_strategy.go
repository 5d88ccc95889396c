package gfx

// EventsConsumerStrategy decides how many pending events ListenEvents
// handles before it renders the next frame. poll waits up to timeoutMs for
// the first event only; later polls do not block.
type EventsConsumerStrategy interface {
	Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int
}

// DrainAllStrategy handles every pending event, stopping early after a
// CloseRequested so the window can shut down before the next frame.
type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int {
	return drain(poll, handle, timeoutMs, 0)
}

// DrainMaxStrategy handles at most Max events per frame.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	return drain(poll, handle, timeoutMs, max)
}

// drain handles events until the queue is empty, limit events were
// handled (limit 0 means no limit) or a CloseRequested was handled.
func drain(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs, limit int) int {
	count := 0
	for limit == 0 || count < limit {
		event, ok := poll(timeoutMs)
		if !ok {
			return count
		}
		timeoutMs = 0
		handle(event)
		count++
		if _, closing := event.(CloseRequested); closing {
			return count
		}
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
