package clock

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Enter allows one tick per line of input, as a console operator pressing
// enter would. A line starting with 'q' stops the clock.
type Enter struct {
	Input  io.Reader
	Output io.Writer // If set, the prompt is written here before each wait.
	Prompt string

	reader *bufio.Reader
	async  asyncRead
}

// Wait reads one line of input.
func (ec *Enter) Wait(ctx context.Context) (err error) {
	if ec.reader == nil {
		ec.reader = bufio.NewReader(ec.Input)
	}

	if ec.Output != nil && len(ec.Prompt) != 0 {
		fmt.Fprint(ec.Output, ec.Prompt)
	}

	data, err := ec.async.read(ctx, func() ([]byte, error) {
		line, err := ec.reader.ReadString('\n')
		if err == io.EOF && len(line) != 0 {
			err = nil
		}
		return []byte(line), err
	})
	if err != nil {
		return
	}

	if strings.HasPrefix(strings.TrimSpace(string(data)), "q") {
		err = io.EOF
		return
	}

	return
}
