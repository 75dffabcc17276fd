package ui

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

//go:embed default.css
var defaultCSS string

// DefaultStylesheet returns the built-in key and panel styles.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded stylesheet: %v", err))
	}
	return sheet
}

// LoadCSS reads and parses a stylesheet file.
func LoadCSS(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSS(string(data))
}

// ParseCSS parses a small CSS subset: selectors ".class" or ".class:state" (comma lists
// allowed) with "key: value;" declarations. At-rule blocks and other selectors are skipped.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var open []Rule
	skipping := false
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet, nil
			}
			return nil, fmt.Errorf("ui: parse stylesheet: %w", p.Err())
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			open = nil
			if atDepth > 0 {
				skipping = true
				continue
			}
			for _, sel := range strings.Split(tokensString(p.Values()), ",") {
				r, ok := parseSelector(strings.TrimSpace(sel))
				if !ok {
					continue
				}
				open = append(open, r)
			}
			skipping = len(open) == 0
		case css.DeclarationGrammar:
			if skipping {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(string(data)))
			val := strings.TrimSpace(tokensString(p.Values()))
			for i := range open {
				open[i].Props[key] = val
			}
		case css.EndRulesetGrammar:
			sheet.Rules = append(sheet.Rules, open...)
			open = nil
		}
	}
}

func tokensString(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}

// parseSelector accepts ".class" and ".class:state".
func parseSelector(sel string) (Rule, bool) {
	if len(sel) < 2 || sel[0] != '.' {
		return Rule{}, false
	}
	class, state, hasState := strings.Cut(sel[1:], ":")
	if class == "" || strings.ContainsAny(class, " >+~.#[") {
		return Rule{}, false
	}
	r := Rule{Class: class, AnyState: !hasState, Props: make(map[string]string)}
	if hasState {
		s, err := ParseState(state)
		if err != nil {
			return Rule{}, false
		}
		r.State = s
	}
	return r, true
}
