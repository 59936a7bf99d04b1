package walk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// PrintAction returns a callback that writes each path on its own line.
func PrintAction(w io.Writer) Callback {
	return func(path string) {
		fmt.Fprintln(w, path)
	}
}

// FormatAction returns a callback that writes template with its
// placeholders replaced, one line per path. See ExpandTemplate.
func FormatAction(w io.Writer, template string) Callback {
	return func(path string) {
		fmt.Fprintln(w, ExpandTemplate(template, path))
	}
}

// ExecAction returns a callback that runs the command described by
// template for each path. Failures are logged and do not stop the walk.
func ExecAction(template string, logger *zap.Logger, stdout io.Writer) Callback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(path string) {
		cmdStr := ExpandTemplate(template, path)
		if err := executeCommand(context.Background(), cmdStr, stdout); err != nil {
			logger.Warn("exec failed",
				zap.String("path", path),
				zap.String("command", cmdStr),
				zap.Error(err),
			)
		}
	}
}

// ExpandTemplate replaces placeholders in template with parts of path:
//
//	{}      full path
//	{base}  final name component
//	{dir}   parent directory
//	{ext}   extension including the dot
//
// Quoted forms {""}, {"base"}, {"dir"} and {"ext"} insert Go-quoted values.
func ExpandTemplate(template, path string) string {
	base := filepath.Base(path)
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)

	str := template
	str = strings.ReplaceAll(str, `{""}`, strconv.Quote(path))
	str = strings.ReplaceAll(str, `{"base"}`, strconv.Quote(base))
	str = strings.ReplaceAll(str, `{"dir"}`, strconv.Quote(dir))
	str = strings.ReplaceAll(str, `{"ext"}`, strconv.Quote(ext))

	str = strings.ReplaceAll(str, "{}", path)
	str = strings.ReplaceAll(str, "{base}", base)
	str = strings.ReplaceAll(str, "{dir}", dir)
	str = strings.ReplaceAll(str, "{ext}", ext)
	return str
}

// executeCommand runs cmdStr split on whitespace and copies its stdout to out.
func executeCommand(ctx context.Context, cmdStr string, out io.Writer) error {
	args := strings.Fields(cmdStr)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("command error: %s: %w", strings.TrimSpace(stderr.String()), err)
		}
		return err
	}

	if out != nil && stdout.Len() > 0 {
		_, _ = out.Write(stdout.Bytes())
	}
	return nil
}
