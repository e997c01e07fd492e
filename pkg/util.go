package pkg

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// InitLog sends the standard logger to dest with prefix. An empty dest
// discards log output.
func InitLog(dest, prefix string) (*os.File, error) {
	log.SetPrefix(prefix)

	if dest == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %v", err)
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %v", err)
	}
	log.SetOutput(f)

	return f, nil
}
