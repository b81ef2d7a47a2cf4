package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to the process stdout and stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs a successful operation result under key. Quiet mode
// prints only the id when data has one; human mode prints human.
func (f *OutputFormatter) Success(key string, data any, human string) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			key:       data,
		})
	}

	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
		return nil
	}

	_, err := fmt.Fprintln(f.out(), human)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.err(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.err(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns an ExitError carrying its exit code
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion)
	return &ExitError{Code: ExitCodeFor(err), Err: err}
}

// Usage reports a usage error with exit code ExitUsage
func (f *OutputFormatter) Usage(message, suggestion string) error {
	_ = f.ErrorWithSuggestion("USAGE_ERROR", message, suggestion)
	return &ExitError{Code: ExitUsage, Err: errors.New(message)}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// NewFormatter builds a formatter from the output flags of cmd, writing to
// the command's stdout and stderr.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}
