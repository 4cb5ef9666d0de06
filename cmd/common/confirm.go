// Package common provides helpers shared by the command packages.
package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm returns the confirmation gate passed into destructive ledger
// operations. With assumeYes the gate always approves; otherwise it asks the
// question on the terminal and accepts y/yes.
func Confirm(question string, assumeYes bool) func() bool {
	if assumeYes {
		return func() bool { return true }
	}
	return func() bool {
		return Ask(question, os.Stdin, os.Stdout)
	}
}

// Ask prompts on w and reads a yes/no answer from r
func Ask(question string, r io.Reader, w io.Writer) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)
	reader := bufio.NewReader(r)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
