// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// startInlineSpinner starts a simple inline spinner on a single line while a
// screen loads its data, and returns a function that stops it and clears the
// line. Windows-friendly: plain \r rewrites, no cursor addressing.
func startInlineSpinner(text string) func() {
	frames := []string{"|", "/", "-", "\\"}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(os.Stdout, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stdout, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}
