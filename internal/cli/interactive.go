package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const menu = `What do you want to calculate?
type "n" for number of monthly payments,
type "a" for annuity monthly payment amount,
type "p" for loan principal,
type "d" for differentiated payments:`

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// promptLoan asks which value to solve for, then only for the values it needs
func promptLoan(in io.Reader, out io.Writer) (domain.LoanRequest, error) {
	p := &prompter{scanner: bufio.NewScanner(in), out: out}

	choice, err := p.line(menu)
	if err != nil {
		return domain.LoanRequest{}, err
	}

	var req domain.LoanRequest
	switch strings.ToLower(choice) {
	case "n":
		req.Type = string(domain.ModelAnnuity)
		err = p.fill(&req, askPrincipal, askPayment, askInterest)
	case "a":
		req.Type = string(domain.ModelAnnuity)
		err = p.fill(&req, askPrincipal, askPeriods, askInterest)
	case "p":
		req.Type = string(domain.ModelAnnuity)
		err = p.fill(&req, askPayment, askPeriods, askInterest)
	case "d":
		req.Type = string(domain.ModelDifferentiated)
		err = p.fill(&req, askPrincipal, askPeriods, askInterest)
	default:
		return req, fmt.Errorf("%w: unknown choice %q", domain.ErrInvalidInput, choice)
	}
	return req, err
}

type question func(p *prompter, req *domain.LoanRequest) error

func (p *prompter) fill(req *domain.LoanRequest, questions ...question) error {
	for _, q := range questions {
		if err := q(p, req); err != nil {
			return err
		}
	}
	return nil
}

func askPrincipal(p *prompter, req *domain.LoanRequest) (err error) {
	req.Principal, err = p.decimal("Enter the loan principal:")
	return err
}

func askPayment(p *prompter, req *domain.LoanRequest) (err error) {
	req.Payment, err = p.decimal("Enter the monthly payment:")
	return err
}

func askInterest(p *prompter, req *domain.LoanRequest) (err error) {
	req.Interest, err = p.decimal("Enter the loan interest:")
	return err
}

func askPeriods(p *prompter, req *domain.LoanRequest) error {
	s, err := p.line("Enter the number of periods:")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: number of periods must be a whole number, got %q", domain.ErrInvalidInput, s)
	}
	req.Periods = &n
	return nil
}

func (p *prompter) decimal(prompt string) (*decimal.Decimal, error) {
	s, err := p.line(prompt)
	if err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: expected a number, got %q", domain.ErrInvalidInput, s)
	}
	return &d, nil
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: input ended before %q was answered", domain.ErrInvalidInput, strings.SplitN(prompt, "\n", 2)[0])
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
