package service

import "sync"

// background tracks notification goroutines so a short-lived process can
// wait for them before releasing the database.
type background struct {
	wg sync.WaitGroup
}

func (b *background) run(fn func()) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fn()
	}()
}

func (b *background) wait() {
	b.wg.Wait()
}
