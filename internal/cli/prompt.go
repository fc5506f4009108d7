package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive answers line by line. It is synchronous: every
// question blocks until the user answers, so no two submissions can ever
// race.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps an input and output stream.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line asks for a single line and returns it trimmed. Empty input is
// allowed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Required re-asks until a non-empty answer arrives.
func (p *Prompter) Required(label string) (string, error) {
	for {
		v, err := p.Line(label + " *")
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(p.out, "This field is required.")
	}
}

// LineDefault asks for a line, falling back to def on empty input.
func (p *Prompter) LineDefault(label, def string) (string, error) {
	v, err := p.Line(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// Float asks for a number, falling back to def on empty input and re-asking
// on unparseable input.
func (p *Prompter) Float(label string, def float64) (float64, error) {
	for {
		v, err := p.Line(fmt.Sprintf("%s [%s]", label, strconv.FormatFloat(def, 'f', -1, 64)))
		if err != nil {
			return 0, err
		}
		if v == "" {
			return def, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		return f, nil
	}
}

// YesNo asks a yes/no question with a default.
func (p *Prompter) YesNo(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		v, err := p.Line(fmt.Sprintf("%s [%s]", label, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(v) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Choose prints a numbered menu and returns the zero-based index of the
// chosen option, re-asking on anything out of range.
func (p *Prompter) Choose(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	for {
		v, err := p.Line("Choice")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}
