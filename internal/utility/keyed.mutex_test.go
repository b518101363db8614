package utility

import (
	"sync"
	"testing"
)

// Hai goroutine cùng key phải tuần tự hóa: counter không mất update.
func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("contact-1")
			counter++
			km.Unlock("contact-1")
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, muốn 100 (mất update do race)", counter)
	}
}

// Key khác nhau không block lẫn nhau: giữ key A vẫn lock được key B.
func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	km := NewKeyedMutex()
	km.Lock("a")
	defer km.Unlock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	<-done // deadlock ở đây nếu các key chặn lẫn nhau
}

// Lock entry được dọn khi không còn ai giữ — map không phình vô hạn.
func TestKeyedMutex_CleansUpEntries(t *testing.T) {
	km := NewKeyedMutex()
	for i := 0; i < 10; i++ {
		km.Lock("x")
		km.Unlock("x")
	}

	km.mu.Lock()
	n := len(km.locks)
	km.mu.Unlock()
	if n != 0 {
		t.Errorf("còn %d lock entry sau khi tất cả đã unlock, muốn 0", n)
	}
}
