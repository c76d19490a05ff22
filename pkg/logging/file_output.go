package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
)

// FileOutput appends log entries to a file as JSON lines. Writes are
// buffered; call Sync to force them to disk.
type FileOutput struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
}

func NewFileOutput(path string) (*FileOutput, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileOutput{
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

func (o *FileOutput) Write(e LogEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.buf.Write(data); err != nil {
		return err
	}
	return o.buf.WriteByte('\n')
}

func (o *FileOutput) Sync() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.buf.Flush(); err != nil {
		return err
	}
	return o.file.Sync()
}

func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.buf.Flush(); err != nil {
		return err
	}
	return o.file.Close()
}
