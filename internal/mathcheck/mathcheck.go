// Package mathcheck decides whether a LaTeX formula is well formed
// enough to attempt rendering. It checks structure only: brace balance,
// environment pairing, and command syntax. Semantic correctness of the
// math is out of scope.
package mathcheck

import (
	"errors"
	"fmt"
)

// Sentinel errors for formula validation.
var (
	ErrUnbalancedBraces      = errors.New("unbalanced braces")
	ErrUnclosedEnvironment   = errors.New("unclosed environment")
	ErrMismatchedEnvironment = errors.New("mismatched environment")
	ErrBadCommand            = errors.New("malformed command")
)

// Checker validates formula structure without rendering it.
type Checker struct{}

// NewChecker creates a formula checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Validate walks the formula once and returns the first structural
// problem found, or nil for a well-formed formula. Escaped symbols
// (\{, \}, \$, \\) do not count toward balance.
func (c *Checker) Validate(expr string) error {
	depth := 0
	var envs []string
	n := len(expr)
	i := 0
	for i < n {
		switch expr[i] {
		case '\\':
			if i+1 >= n {
				return fmt.Errorf("%w: trailing backslash", ErrBadCommand)
			}
			if !isLetter(expr[i+1]) {
				// Escaped symbol.
				i += 2
				continue
			}
			cmd, rest := readCommand(expr, i)
			switch cmd {
			case "begin":
				name, after, err := readEnvName(expr, rest)
				if err != nil {
					return err
				}
				envs = append(envs, name)
				i = after
			case "end":
				name, after, err := readEnvName(expr, rest)
				if err != nil {
					return err
				}
				if len(envs) == 0 {
					return fmt.Errorf(`%w: \end{%s} without \begin`, ErrMismatchedEnvironment, name)
				}
				if top := envs[len(envs)-1]; top != name {
					return fmt.Errorf(`%w: \begin{%s} closed by \end{%s}`, ErrMismatchedEnvironment, top, name)
				}
				envs = envs[:len(envs)-1]
				i = after
			default:
				i = rest
			}
		case '{':
			depth++
			i++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unexpected } at offset %d", ErrUnbalancedBraces, i)
			}
			i++
		default:
			i++
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed brace(s)", ErrUnbalancedBraces, depth)
	}
	if len(envs) > 0 {
		return fmt.Errorf("%w: %s", ErrUnclosedEnvironment, envs[len(envs)-1])
	}
	return nil
}

// readCommand reads the letter run after a backslash at start. It
// returns the command name and the index past it.
func readCommand(expr string, start int) (string, int) {
	i := start + 1
	for i < len(expr) && isLetter(expr[i]) {
		i++
	}
	return expr[start+1 : i], i
}

// readEnvName reads a {name} group after \begin or \end. Names are
// letters with an optional trailing star.
func readEnvName(expr string, start int) (string, int, error) {
	i := start
	for i < len(expr) && (expr[i] == ' ' || expr[i] == '\t') {
		i++
	}
	if i >= len(expr) || expr[i] != '{' {
		return "", 0, fmt.Errorf("%w: missing environment name", ErrBadCommand)
	}
	i++
	nameStart := i
	for i < len(expr) && isLetter(expr[i]) {
		i++
	}
	if i < len(expr) && expr[i] == '*' {
		i++
	}
	if i == nameStart || i >= len(expr) || expr[i] != '}' {
		return "", 0, fmt.Errorf("%w: invalid environment name", ErrBadCommand)
	}
	return expr[nameStart:i], i + 1, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
