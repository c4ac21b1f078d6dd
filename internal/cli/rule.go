package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"infoca/internal/eca"
)

// RuleEntry is one row of a rule table.
type RuleEntry struct {
	Neighborhood string `json:"neighborhood"`
	Output       uint8  `json:"output"`
}

// RuleOutput is the JSON payload of the rule command.
type RuleOutput struct {
	Rule   int         `json:"rule"`
	Binary string      `json:"binary"`
	Table  []RuleEntry `json:"table"`
}

// NewRuleCommand creates the rule command.
func NewRuleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rule <number>",
		Short:         "Print the lookup table of an elementary rule",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRule(rootOpts, args[0], cmd)
		},
	}
}

func runRule(rootOpts *RootOptions, arg string, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)

	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n > 255 {
		err = NewExitError(ExitCommandError, fmt.Sprintf("rule must be an integer in [0,255], got %q", arg))
		out.Error(err)
		return err
	}

	table := eca.RuleToBinary(uint8(n))
	res := RuleOutput{Rule: n, Table: make([]RuleEntry, 0, len(table))}
	var bits strings.Builder
	for k, bit := range table {
		bits.WriteByte('0' + bit)
		res.Table = append(res.Table, RuleEntry{Neighborhood: fmt.Sprintf("%03b", 7-k), Output: bit})
	}
	res.Binary = bits.String()

	if out.JSON() {
		return out.Success(res)
	}
	w := out.Writer
	fmt.Fprintf(w, "rule %d = %s\n", res.Rule, res.Binary)
	for i, e := range res.Table {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, e.Neighborhood)
	}
	fmt.Fprintln(w)
	for i, e := range res.Table {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, " %d ", e.Output)
	}
	fmt.Fprintln(w)
	return nil
}
