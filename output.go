package offlinedocs

import (
	"fmt"

	"github.com/alnah/go-offlinedocs/internal/fileutil"
)

// WriteOutput writes the generated page to path, creating parent
// directories as needed. The file is replaced atomically so readers never
// observe a partial page.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: output path is empty", ErrOutputWrite)
	}
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
