// Package crontab reads files holding one cron expression per line.
package crontab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rcliao/cronexpand/pkg/cronexpr"
	"github.com/rcliao/cronexpand/pkg/logger"
)

// Entry is one expression line of a crontab file.
type Entry struct {
	Line   int
	Source string
	// Expr is nil when the line could not be tokenized; Err says why.
	Expr *cronexpr.Expression
	Err  error
}

// File is the parsed content of a crontab file.
type File struct {
	Entries []Entry
	// Env holds NAME=value assignment lines.
	Env map[string]string
}

// Load reads and parses a crontab file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse reads crontab lines from r. Blank lines and lines starting with #
// are skipped. A line that fails to tokenize is kept with its error, so one
// bad line does not hide the rest.
func Parse(r io.Reader) (*File, error) {
	log := logger.Named("crontab")
	file := &File{Env: make(map[string]string)}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, value, ok := assignment(line); ok {
			file.Env[name] = value
			continue
		}

		e := Entry{Line: n, Source: line}
		e.Expr, e.Err = cronexpr.New(line)
		if e.Err != nil {
			log.Debug("invalid crontab line", zap.Int("line", n), zap.Error(e.Err))
		}
		file.Entries = append(file.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	log.Debug("parsed crontab", zap.Int("entries", len(file.Entries)), zap.Int("env", len(file.Env)))
	return file, nil
}

// assignment recognizes NAME=value lines. The name is a shell identifier.
func assignment(line string) (string, string, bool) {
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return "", "", false
		}
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return name, value, true
}
