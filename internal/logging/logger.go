// Package logging provides the step-synchronous console reporting used by
// the time driver, generalizing
// model_problems/Euler2D/euler.go's PrintInitialization/PrintUpdate/
// PrintFinal into a small reusable Logger instead of free functions on the
// solver struct. No structured-logging library is adopted: the teacher's
// own ambient logging is exactly this, synchronous fmt.Printf calls keyed to
// step number, so following it here is the grounded choice rather than an
// absence of one.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes step-keyed progress lines to an io.Writer, defaulting to
// os.Stdout.
type Logger struct {
	w io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger { return &Logger{w: w} }

// Default returns a Logger writing to os.Stdout, the teacher's own target.
func Default() *Logger { return New(os.Stdout) }

// Info prints a one-off informational line, matching the teacher's
// ShowInformation-style session banners (original_source's
// "Initialize domain geometry...", "Session End").
func (l *Logger) Info(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Warn prints a recoverable-condition line prefixed so it stands out in the
// scrolling step log.
func (l *Logger) Warn(format string, args ...any) {
	fmt.Fprintf(l.w, "warning: "+format+"\n", args...)
}

// Fatal prints an unrecoverable-condition line. Callers still return the
// error up to cmd/ for the exit-code decision; Fatal only formats.
func (l *Logger) Fatal(format string, args ...any) {
	fmt.Fprintf(l.w, "fatal: "+format+"\n", args...)
}

// Initialization prints the solve's opening banner, the generalized form of
// euler.go's PrintInitialization.
func (l *Logger) Initialization(totalTime float64, totalStep int, cfl float64) {
	fmt.Fprintf(l.w, "Solving until time = %10.5f or step = %d (CFL = %6.3f)\n", totalTime, totalStep, cfl)
	fmt.Fprintf(l.w, "    step        time          dt\n")
}

// Step prints one step's progress line, the generalized form of euler.go's
// PrintUpdate.
func (l *Logger) Step(step int, t, dt float64) {
	fmt.Fprintf(l.w, "%8d%12.5f%12.5e\n", step, t, dt)
}

// Final prints the closing rate-of-execution summary, the generalized form
// of euler.go's PrintFinal.
func (l *Logger) Final(elapsed time.Duration, steps int, nMax int) {
	var rate float64
	if steps > 0 && nMax > 0 {
		rate = float64(elapsed.Microseconds()) / float64(steps*nMax)
	}
	fmt.Fprintf(l.w, "\nRate of execution = %10.5f us/(node*step) over %d steps\n", rate, steps)
}
