//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package ihex

func adviseSequential([]byte) error {
	return nil
}
