package dom

import "sync"

// Location is the address bar of the page: a hash fragment and the ability to reload the page.
// OnReload is called on every Reload, it is where the caller re-renders the page from the backend.
type Location struct {
	mu       sync.Mutex
	hash     string
	reloads  int
	OnReload func()
}

func (l *Location) SetHash(hash string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hash = hash
}

func (l *Location) Hash() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hash
}

func (l *Location) Reload() {
	l.mu.Lock()
	l.reloads++
	onReload := l.OnReload
	l.mu.Unlock()
	if onReload != nil {
		onReload()
	}
}

// Reloads returns how many times the page was reloaded.
func (l *Location) Reloads() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reloads
}
