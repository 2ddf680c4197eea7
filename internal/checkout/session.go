package checkout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/toolrental/tool-rental/internal/rental"
	"github.com/toolrental/tool-rental/internal/report"
	"github.com/toolrental/tool-rental/pkg/dateutil"
	"go.uber.org/zap"
)

// ErrInputClosed is returned when input ends before every answer was given
var ErrInputClosed = errors.New("input ended before checkout was complete")

const (
	promptToolCode   = "Please enter tool code: "
	promptRentalDays = "Please enter the number of days for this rental: "
	promptDiscount   = "Please enter the discount percentage as a whole number (0-100): "
	promptDate       = "Please enter checkout date in the format (MM/DD/YYYY): "

	retryToolCode   = "The tool code provided is invalid, please try again."
	retryRentalDays = "The number of rental days must be a whole number >= 1, please try again."
	retryDiscount   = "Discount percentage must be a whole number between 0-100, please try again."
	retryDate       = "Invalid date provided, please try again."
)

// Session runs one interactive checkout at the rental counter
type Session struct {
	builder   *rental.Builder
	formatter *report.Formatter
	format    string
	scanner   *bufio.Scanner
	out       io.Writer
	logger    *zap.Logger
}

// NewSession creates a checkout session reading answers from in and writing prompts to out
func NewSession(
	builder *rental.Builder,
	formatter *report.Formatter,
	format string,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		builder:   builder,
		formatter: formatter,
		format:    format,
		scanner:   scanner,
		out:       out,
		logger:    logger,
	}
}

// Run prompts until every answer is valid, then prints the agreement.
// A request the builder rejects is printed and returned as the error.
func (s *Session) Run() (*rental.Agreement, error) {
	fmt.Fprintln(s.out, "Welcome to checkout!")

	req, err := s.collect()
	if err != nil {
		return nil, err
	}

	s.logger.Info("Checkout request collected",
		zap.String("tool_code", req.ToolCode),
		zap.Int("rental_days", req.RentalDays),
		zap.Int("discount_percent", req.DiscountPercent),
		zap.String("checkout_date", req.CheckoutDate.Format("2006-01-02")))

	fmt.Fprintln(s.out)

	agreement, err := s.builder.Build(req)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return nil, err
	}

	if err := s.formatter.Render(s.out, agreement, s.format); err != nil {
		return nil, fmt.Errorf("failed to print agreement: %w", err)
	}

	return agreement, nil
}

func (s *Session) collect() (rental.Request, error) {
	var req rental.Request
	var err error

	req.ToolCode, err = ask(s, promptToolCode, retryToolCode, func(answer string) (string, bool) {
		tool, ok := s.builder.Catalog().Lookup(answer)
		return tool.Code, ok
	})
	if err != nil {
		return req, err
	}

	req.RentalDays, err = ask(s, promptRentalDays, retryRentalDays, func(answer string) (int, bool) {
		days, err := strconv.Atoi(answer)
		return days, err == nil
	})
	if err != nil {
		return req, err
	}

	req.DiscountPercent, err = ask(s, promptDiscount, retryDiscount, func(answer string) (int, bool) {
		percent, err := strconv.Atoi(answer)
		return percent, err == nil && percent >= 0 && percent <= 100
	})
	if err != nil {
		return req, err
	}

	req.CheckoutDate, err = ask(s, promptDate, retryDate, func(answer string) (time.Time, bool) {
		date, err := dateutil.ParseDate(answer)
		return date, err == nil
	})
	if err != nil {
		return req, err
	}

	return req, nil
}

// ask prompts until parse accepts an answer
func ask[T any](s *Session, prompt, retry string, parse func(string) (T, bool)) (T, error) {
	for {
		fmt.Fprint(s.out, prompt)

		answer, err := s.next()
		if err != nil {
			var zero T
			return zero, err
		}

		if value, ok := parse(answer); ok {
			return value, nil
		}

		s.logger.Debug("Rejected checkout answer",
			zap.String("prompt", strings.TrimSpace(prompt)),
			zap.String("answer", answer))
		fmt.Fprintln(s.out, retry)
	}
}

func (s *Session) next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}
