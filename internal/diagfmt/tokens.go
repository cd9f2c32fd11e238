package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
)

type TokenOutput struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Channel string `json:"channel"`
	Text    string `json:"text,omitempty"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
}

func tokenOutput(tok token.Token, fs *source.FileSet) TokenOutput {
	out := TokenOutput{
		Index:   tok.Index,
		Kind:    tok.Kind.String(),
		Channel: tok.Channel.String(),
		Text:    tok.Text,
		Line:    tok.Line,
		Start:   tok.Span.Start,
		End:     tok.Span.End,
	}
	if fs != nil && fs.Get(tok.Span.File) != nil {
		start, _ := fs.Resolve(tok.Span)
		out.Col = start.Col
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, tok := range tokens {
		o := tokenOutput(tok, fs)
		if _, err := fmt.Fprintf(w, "%3d: %-14s %-7s", o.Index, o.Kind, o.Channel); err != nil {
			return err
		}
		if o.Text != "" {
			fmt.Fprintf(w, " %q", o.Text)
		}
		fmt.Fprintf(w, " at %d:%d\n", o.Line, o.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(tok, fs))
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
