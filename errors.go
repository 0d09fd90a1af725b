package glmesh

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// Sentinel errors returned by the resource constructors.
var (
	// ErrFileNotFound is returned when a shader source file does not exist.
	ErrFileNotFound = errors.New("glmesh: shader source file not found")

	// ErrCompile is wrapped by every *CompileError.
	ErrCompile = errors.New("glmesh: shader compilation failed")

	// ErrLink is wrapped by every *LinkError.
	ErrLink = errors.New("glmesh: shader program link failed")

	// ErrDeviceAllocation means the driver could not allocate an object or
	// its storage. It is fatal: the caller should tear down and exit.
	ErrDeviceAllocation = errors.New("glmesh: device allocation failed")

	// ErrEmptyData is returned when a buffer would be created without data.
	ErrEmptyData = errors.New("glmesh: empty buffer data")

	// ErrInvalidSlot is returned for attribute slots >= glcore.MaxVertexAttribs.
	ErrInvalidSlot = errors.New("glmesh: invalid vertex attribute slot")

	// ErrLayoutMismatch is returned when a buffer does not hold a whole
	// number of vertices for the requested attribute format.
	ErrLayoutMismatch = errors.New("glmesh: buffer does not match attribute layout")

	// ErrDestroyed is returned when an object is used after Destroy.
	ErrDestroyed = errors.New("glmesh: object already destroyed")

	// ErrNilDriver is returned when a constructor is called without a driver.
	ErrNilDriver = errors.New("glmesh: nil driver")
)

// excerptRadius is the number of source lines kept on each side of the
// reported line.
const excerptRadius = 2

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage gputypes.ShaderStage
	// Excerpt holds the numbered source lines around the first line the
	// log refers to, or the first lines of the source if it names none.
	Excerpt string
	// Log is the driver (or translator) info log.
	Log string
}

func (e *CompileError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		return fmt.Sprintf("glmesh: %s shader compilation failed", stageName(e.Stage))
	}
	return fmt.Sprintf("glmesh: %s shader compilation failed: %s", stageName(e.Stage), firstLine(log))
}

// Unwrap returns ErrCompile.
func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		return "glmesh: shader program link failed"
	}
	return "glmesh: shader program link failed: " + firstLine(log)
}

// Unwrap returns ErrLink.
func (e *LinkError) Unwrap() error { return ErrLink }

// IsFatal reports whether err must abort the program. Only device
// allocation failures are fatal; file, compile and link errors leave the
// driver usable.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDeviceAllocation)
}

// allocationError wraps ErrDeviceAllocation together with the driver error
// that caused it, if any.
func allocationError(what string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrDeviceAllocation, what)
	}
	return fmt.Errorf("%w: %s: %w", ErrDeviceAllocation, what, cause)
}

// checkDriver drains the driver error flag after an upload. OUT_OF_MEMORY
// becomes an allocation error; anything else is returned as is.
func checkDriver(d glcore.Driver, what string) error {
	err := d.Error()
	if err == nil {
		return nil
	}
	if glcore.IsOutOfMemory(err) {
		return allocationError(what, err)
	}
	return fmt.Errorf("glmesh: %s: %w", what, err)
}

// logLine matches the line number in common info log formats:
// Mesa "0:12(3): error", NVIDIA "0(12) : error", ANGLE and Apple
// "ERROR: 0:12: ", and naga "line 12, column 3:".
var logLine = regexp.MustCompile(`(?m)(?:^\s*\d+:(\d+)\(\d+\)|^\s*\d+\((\d+)\)\s*:|ERROR:\s*\d+:(\d+):|line (\d+), column \d+)`)

// errorLine returns the 1-based source line named by log, or 0.
func errorLine(log string) int {
	m := logLine.FindStringSubmatch(log)
	if m == nil {
		return 0
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		if n, err := strconv.Atoi(g); err == nil {
			return n
		}
	}
	return 0
}

// excerpt returns the numbered lines of source around the line log refers
// to. Without a usable line number it returns the first lines.
func excerpt(source, log string) string {
	lines := strings.Split(strings.TrimRight(source, "\n"), "\n")
	line := errorLine(log)
	if line > len(lines) {
		line = 0
	}
	from, to := 1, min(2*excerptRadius+1, len(lines))
	if line > 0 {
		from = max(line-excerptRadius, 1)
		to = min(line+excerptRadius, len(lines))
	}

	var b strings.Builder
	for n := from; n <= to; n++ {
		marker := "  "
		if n == line {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%4d | %s\n", marker, n, lines[n-1])
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func stageName(s gputypes.ShaderStage) string {
	return strings.ToLower(s.String())
}
