//go:build deadlock

// Package syncutil, isteğe bağlı deadlock tespiti olan mutex tiplerini sağlar.
// Geliştirme sırasında -tags=deadlock ile derlenirse go-deadlock kullanılır.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled, deadlock dedektörü aktifse true olur.
const DeadlockEnabled = true

func init() {
	// Tek bir komut turu en fazla birkaç zaman aşımı sürer; 30 saniye
	// bunu rahatça kapsar.
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// Mutex, karşılıklı dışlama kilididir.
type Mutex struct {
	deadlock.Mutex
}
