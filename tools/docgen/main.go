// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// Minimal doc generator:
// - Reads docs/commands/*.md as canonical command docs
// - Generates:
//   - docs/man/share/man1/primes-<cmd>.1 via md2man (convert full markdown)
//   - docs/tldr/primes-<cmd>.md using the Quick examples block and short description

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	for _, dir := range []string{manOutDir, tldrOutDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir %s: %v", dir, err)
		}
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		fatalf("reading commands dir %s: %v", commandsDir, err)
	}

	var processed int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		cmd := strings.TrimSuffix(e.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(commandsDir, e.Name()))
		if err != nil {
			fatalf("reading %s: %v", e.Name(), err)
		}

		// Man page from the full markdown.
		manPath := filepath.Join(manOutDir, fmt.Sprintf("primes-%s.1", cmd))
		if err := writeFileIfChanged(manPath, md2man.Render(raw), writeOnlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", cmd, err)
		}

		// TLDR page from the short description plus quick examples.
		tldr := buildTLDR(cmd, shortDescription(string(raw)), quickExamples(string(raw)))
		tldrPath := filepath.Join(tldrOutDir, fmt.Sprintf("primes-%s.md", cmd))
		if err := writeFileIfChanged(tldrPath, []byte(tldr), writeOnlyIfChanged); err != nil {
			fatalf("writing TLDR for %s: %v", cmd, err)
		}

		processed++
	}

	if processed == 0 {
		fatalf("no command markdown found under %s", commandsDir)
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil:
			if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)) {
				return nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// shortDescription returns the first paragraph of the "Short description"
// section, falling back to the H1 title.
func shortDescription(md string) string {
	idx := strings.Index(strings.ToLower(md), "short description")
	if idx >= 0 {
		rest := md[idx:]
		if nl := strings.Index(rest, "\n"); nl >= 0 {
			rest = rest[nl+1:]
		}
		var b strings.Builder
		for _, ln := range strings.Split(rest, "\n") {
			ln = strings.TrimSpace(ln)
			if ln == "" {
				if b.Len() > 0 {
					break
				}
				continue
			}
			if strings.HasPrefix(ln, "#") {
				break
			}
			b.WriteString(ln)
			b.WriteString(" ")
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			return s
		}
	}

	if m := h1Re.FindStringSubmatch(md); m != nil {
		return strings.TrimSpace(m[1]) + "."
	}
	return ""
}

type example struct {
	Desc string
	Cmd  string
}

// quickExamples parses the first fenced code block after the "Quick
// examples" header. A comment line describes the command line that
// follows it.
func quickExamples(md string) []example {
	idx := strings.Index(strings.ToLower(md), "quick examples")
	if idx < 0 {
		return nil
	}
	rest := md[idx:]

	const fence = "```"
	start := strings.Index(rest, fence)
	if start < 0 {
		return nil
	}
	rest = rest[start+len(fence):]
	end := strings.Index(rest, fence)
	if end < 0 {
		return nil
	}

	var exs []example
	desc := ""
	for _, ln := range strings.Split(rest[:end], "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if strings.HasPrefix(ln, "#") {
			desc = strings.TrimSpace(strings.TrimPrefix(ln, "#"))
			continue
		}
		if desc == "" {
			desc = "Example"
		}
		exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(ln), " ")})
		desc = ""
	}
	return exs
}

func buildTLDR(cmd, short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# primes-" + cmd + "\n\n")
	if short == "" {
		short = "primes " + cmd
	}
	b.WriteString("> " + short + "\n")
	b.WriteString("> More information: https://github.com/eligum/primes.\n\n")

	if len(exs) == 0 {
		b.WriteString("- Show help for the command:\n\n")
		b.WriteString("`primes " + cmd + " --help`\n")
		return b.String()
	}

	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ex.Desc + ":\n\n")
		b.WriteString("`" + ex.Cmd + "`\n")
	}
	return b.String()
}
