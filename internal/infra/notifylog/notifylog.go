// Package notifylog is the append-only local record used when no other
// notification channel can carry a status transition.
package notifylog

import (
	"fmt"
	"os"
	"sync"
)

type Appender interface {
	Append(email, text string) error
}

type FileLog struct {
	mu   sync.Mutex
	path string
}

func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

func (l *FileLog) Append(email, text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "[%s] %s\n", email, text)
	return err
}

var _ Appender = (*FileLog)(nil)
