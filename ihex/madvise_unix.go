//go:build linux || darwin || freebsd || netbsd || openbsd

package ihex

import "golang.org/x/sys/unix"

// adviseSequential tells the kernel the mapping will be read front to back once.
func adviseSequential(data []byte) error {
	return unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
