package outbound

// TaskDispatcher schedules work onto a shared pool. *ants.Pool satisfies it.
type TaskDispatcher interface {
	Submit(task func()) error
}
