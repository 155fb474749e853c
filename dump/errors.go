package dump

import (
	"fmt"

	"github.com/moffa90/go-ihex/ihex"
)

// UnsupportedFileTypeError indicates that the file uses a wider address form than the dumper accepts.
type UnsupportedFileTypeError struct {
	FileType ihex.FileType
	Max      ihex.FileType
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: file is %s, dumper accepts up to %s",
		e.FileType, e.Max)
}
