package service

// Callback receives the outcome of a sync operation. For a given operation
// exactly one of the methods is called per delivery, always through the
// repository's [Dispatcher].
type Callback[T any] interface {
	OnSuccess(result T)
	OnFailure(message string)
}

// CallbackFuncs adapts two plain functions to [Callback]. Nil fields are
// skipped.
type CallbackFuncs[T any] struct {
	Success func(result T)
	Failure func(message string)
}

func (c CallbackFuncs[T]) OnSuccess(result T) {
	if c.Success != nil {
		c.Success(result)
	}
}

func (c CallbackFuncs[T]) OnFailure(message string) {
	if c.Failure != nil {
		c.Failure(message)
	}
}

// Result is one delivery of an operation: either a value or a failure
// message.
type Result[T any] struct {
	Value   T
	Message string
	Failed  bool
}

func success[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func failure[T any](message string) Result[T] {
	return Result[T]{Message: message, Failed: true}
}

// Deliver hands the result to cb.
func (r Result[T]) Deliver(cb Callback[T]) {
	if r.Failed {
		cb.OnFailure(r.Message)
		return
	}
	cb.OnSuccess(r.Value)
}
