package repository

import "context"

// Subscription is a standing listener registration.
type Subscription interface {
	// Stop detaches the listener. It is safe to call more than once.
	Stop()
}

// Feed pushes the full current contents of a collection on every change.
type Feed[T any] interface {
	// Subscribe delivers the current contents, then calls onSnapshot on every change until Stop
	// is called or ctx is done. onError receives listener failures; a backend may end the
	// listener after reporting one.
	Subscribe(ctx context.Context, onSnapshot func([]T), onError func(error)) (Subscription, error)
}
