package events

// EventCollector gathers events raised by several aggregates during one use
// case so they can be published together once persistence has succeeded.
// The zero value is ready to use.
type EventCollector struct {
	events []DomainEvent
}

// Record appends events in the order they were raised.
func (c *EventCollector) Record(events ...DomainEvent) {
	c.events = append(c.events, events...)
}

// Len reports how many events are pending.
func (c *EventCollector) Len() int { return len(c.events) }

// Drain returns the pending events and empties the collector.
func (c *EventCollector) Drain() []DomainEvent {
	out := c.events
	c.events = nil
	return out
}
