package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"golang.org/x/term"
)

type outputFormat string

const (
	formatAuto outputFormat = "auto"
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case formatAuto, formatText, formatJSON:
		return outputFormat(s), nil
	}
	return "", fmt.Errorf("invalid --format %q (want auto, text or json)", s)
}

// effective resolves auto to text on a terminal and JSON otherwise.
func (f outputFormat) effective(w io.Writer) outputFormat {
	if f != formatAuto {
		return f
	}
	if isTerminal(w) {
		return formatText
	}
	return formatJSON
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
