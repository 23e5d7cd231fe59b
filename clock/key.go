package clock

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/term"
)

const (
	KEY_CTRL_C = 0x03
	KEY_CTRL_D = 0x04
	KEY_ESCAPE = 0x1b
)

// Key allows one tick per keypress on a terminal in cbreak mode.
// 'q', escape, ^C or ^D stop the clock.
type Key struct {
	Output io.Writer // If set, the prompt is written here before each wait.
	Prompt string

	tty   *term.Term
	async asyncRead
}

// OpenKey opens a terminal device, usually /dev/tty, in cbreak mode.
func OpenKey(device string) (kc *Key, err error) {
	tty, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return
	}

	kc = &Key{tty: tty}
	return
}

// Close restores the terminal mode, and closes the device.
func (kc *Key) Close() (err error) {
	err = kc.tty.Restore()
	if err != nil {
		kc.tty.Close()
		return
	}

	return kc.tty.Close()
}

// Wait reads a single key.
func (kc *Key) Wait(ctx context.Context) (err error) {
	if kc.Output != nil && len(kc.Prompt) != 0 {
		fmt.Fprint(kc.Output, kc.Prompt)
	}

	data, err := kc.async.read(ctx, func() ([]byte, error) {
		var key [1]byte
		n, err := kc.tty.Read(key[:])
		return key[:n], err
	})
	if err != nil {
		return
	}

	return keyAction(data)
}

// keyAction maps a keypress to a clock result.
func keyAction(data []byte) (err error) {
	if len(data) == 0 {
		err = io.EOF
		return
	}

	switch data[0] {
	case 'q', 'Q', KEY_CTRL_C, KEY_CTRL_D, KEY_ESCAPE:
		err = io.EOF
	}

	return
}
