//go:build !deadlock

// Package syncutil, isteğe bağlı deadlock tespiti olan mutex tiplerini sağlar.
// Geliştirme sırasında -tags=deadlock ile derlenirse go-deadlock kullanılır.
package syncutil

import "sync"

// DeadlockEnabled, deadlock dedektörü aktifse true olur.
const DeadlockEnabled = false

// Mutex, karşılıklı dışlama kilididir.
type Mutex struct {
	sync.Mutex
}
