package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type inputLine struct {
	text string
	err  error
}

// session is one operator at the terminal: prompts go out, answers come in a
// line at a time. A reader goroutine feeds lines so that a prompt can give up
// when the context is cancelled.
type session struct {
	lines <-chan inputLine
	done  chan struct{}
	out   io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	lines := make(chan inputLine)
	s := &session{lines: lines, done: make(chan struct{}), out: out}
	go s.read(in, lines)
	return s
}

// read forwards lines until input ends or the session is closed. The last
// value sent carries io.EOF or the read error.
func (s *session) read(in io.Reader, lines chan<- inputLine) {
	defer close(lines)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case lines <- inputLine{text: strings.TrimRight(sc.Text(), "\r")}:
		case <-s.done:
			return
		}
	}

	err := io.EOF
	if sc.Err() != nil {
		err = fmt.Errorf("read input: %w", sc.Err())
	}
	select {
	case lines <- inputLine{err: err}:
	case <-s.done:
	}
}

// close stops the reader goroutine at its next line. A goroutine blocked in
// a read of the underlying reader stays there until that read returns.
func (s *session) close() {
	close(s.done)
}

// ask writes label and waits for the next line. It returns io.EOF once input
// is exhausted and ctx.Err() if ctx is cancelled first.
func (s *session) ask(ctx context.Context, label string) (string, error) {
	if _, err := io.WriteString(s.out, label); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (s *session) say(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format+"\n", args...)
	return err
}
