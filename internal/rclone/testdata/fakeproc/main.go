// Package main provides a fake rclone rcd for testing the supervisor.
// It emits canned log lines on stdout/stderr and then behaves like a
// long-running daemon.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	mode := flag.String("mode", "ready", "behavior: ready, fail, garbage")
	flag.Parse()

	switch *mode {
	case "ready":
		fmt.Println(`{"level":"info","msg":"Serving remote control on http://127.0.0.1:5572/","source":"rcserver/rcserver.go:407","time":"2024-03-01T10:00:00Z"}`)
		time.Sleep(time.Hour)
	case "fail":
		// rclone reports rc startup failures on stderr.
		fmt.Fprintln(os.Stderr, `{"level":"error","msg":"Failed to start remote control: listen tcp 127.0.0.1:5572: address already in use","source":"rcserver/rcserver.go:100","time":"2024-03-01T10:00:00Z"}`)
		time.Sleep(time.Hour)
	case "garbage":
		fmt.Println("panic: something bad")
		fmt.Print("tail without newline")
	}
}
