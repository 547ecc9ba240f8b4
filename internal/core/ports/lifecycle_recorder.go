package ports

// LifecycleRecorder observes order lifecycle events for metrics.
type LifecycleRecorder interface {
	OrderCreated()
	OrderStatusChanged(transition string)
	OrderDeleted()
	CheckoutCollision()
}
