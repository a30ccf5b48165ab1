package rclone

import "bytes"

// LineFramer turns a stream of arbitrary-sized chunks into complete lines.
// It implements io.Writer so it can be wired directly as a command's stdout
// or stderr. Each complete line (without its trailing newline) is passed to
// the emit callback in order. At most one partial line is buffered at a time.
type LineFramer struct {
	emit    func(line string)
	backlog []byte
}

// NewLineFramer creates a framer that calls emit once per complete line.
func NewLineFramer(emit func(line string)) *LineFramer {
	return &LineFramer{emit: emit}
}

// Write consumes the next chunk of the stream and emits any lines it
// completes. It never fails; the error return satisfies io.Writer.
func (f *LineFramer) Write(p []byte) (int, error) {
	f.backlog = append(f.backlog, p...)
	for {
		idx := bytes.IndexByte(f.backlog, '\n')
		if idx < 0 {
			break
		}
		line := string(f.backlog[:idx])
		f.backlog = f.backlog[idx+1:]
		f.emit(line)
	}
	return len(p), nil
}

// Flush emits the buffered partial line, if any. Call it at end of stream so
// a trailing unterminated line is not lost. Flushing an empty backlog emits
// nothing.
func (f *LineFramer) Flush() {
	if len(f.backlog) == 0 {
		return
	}
	line := string(f.backlog)
	f.backlog = nil
	f.emit(line)
}
