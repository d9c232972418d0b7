package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/logging"
	"github.com/agbru/fibtime/internal/ui"
)

// FormatErrorMessage is printed once for every line that is not an integer.
const FormatErrorMessage = "Error: Format error, input again please."

// Prompter reads the Fibonacci index from a line-oriented input.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger logging.Logger
}

// NewPrompter creates a Prompter reading from in and writing the prompt and
// format errors to out. A nil logger discards diagnostics.
func NewPrompter(in io.Reader, out io.Writer, logger logging.Logger) *Prompter {
	if logger == nil {
		logger = logging.NewLogger(io.Discard, "input")
	}
	return &Prompter{in: bufio.NewReader(in), out: out, logger: logger}
}

// ReadInt prints prompt once, then reads lines until one parses as a signed
// integer of bitSize bits.
//
// Each rejected line produces FormatErrorMessage and a further read; the
// prompt is not repeated. A final line without a trailing newline is still
// parsed. When the input ends before a valid line, apperrors.ErrEndOfInput
// is returned.
func (p *Prompter) ReadInt(prompt string, bitSize int) (int64, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	for {
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, apperrors.WrapError(err, "reading input")
		}
		if line == "" && err != nil {
			return 0, apperrors.ErrEndOfInput
		}

		n, perr := ParseIndex(line, bitSize)
		if perr == nil {
			p.logger.Debug("index read", logging.Int64("n", n))
			return n, nil
		}

		p.logger.Debug("rejected input", logging.String("line", strings.TrimSpace(line)), logging.Err(perr))
		fmt.Fprintln(p.out, ui.Error(FormatErrorMessage))
		if err != nil {
			return 0, apperrors.ErrEndOfInput
		}
	}
}

// ParseIndex parses text as a base-10 signed integer of bitSize bits.
// Surrounding whitespace is ignored and a leading sign is accepted.
func ParseIndex(text string, bitSize int) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(text), 10, bitSize)
}
