package streamchat

// Result is the outcome of an asynchronously executed call.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn on its own goroutine and returns a channel that yields
// its single result. It is the non-blocking twin of the synchronous
// endpoint methods: same validation, same envelope, same response
// semantics, only the scheduling differs.
//
//	users := streamchat.Async(func() (*streamchat.Response, error) {
//	    return client.QueryUsers(ctx, filter, nil, nil)
//	})
//	channels := streamchat.Async(func() (*streamchat.Response, error) {
//	    return client.QueryChannels(ctx, filter, nil, nil)
//	})
//	u, ch := <-users, <-channels
//
// Cancellation flows through the context captured by fn. The channel
// is buffered; dropping it without receiving does not leak the
// goroutine.
func Async[T any](fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		v, err := fn()
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
