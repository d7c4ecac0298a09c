package cmd

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func runWith(c *cobra.Command, args ...string) (string, int) {
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(args)
	code := run(c)
	return out.String(), code
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		err  error
		out  string
		code int
	}{
		{name: "success", out: "done\n", code: 0},
		{name: "failure", err: errors.New("something broke"), out: "something broke\n", code: 1},
		{name: "reported", err: errors.Wrap(errReported, "already printed"), out: "", code: 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newCommand(&cobra.Command{
				Use: "tool",
				RunE: func(cmd *cobra.Command, args []string) error {
					if test.err != nil {
						return test.err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "done")
					return nil
				},
			})
			out, code := runWith(c)
			assert.Equal(t, test.code, code)
			assert.Equal(t, test.out, out)
		})
	}
}

func TestRunUsageError(t *testing.T) {
	out, code := runWith(NewExposeKeyCommand(), "only-one-argument")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "accepts 2 arg(s), received 1")
}

func TestVersion(t *testing.T) {
	out, code := runWith(NewP2PKeyCommand(), "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, Version)
}
