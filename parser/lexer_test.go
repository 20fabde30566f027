package parser

import "testing"

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			"42",
			[]Token{
				{Type: TOKEN_NUMBER, Value: "42"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"3.14",
			[]Token{
				{Type: TOKEN_NUMBER, Value: "3.14"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"2e10",
			[]Token{
				{Type: TOKEN_NUMBER, Value: "2e10"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"2e",
			[]Token{
				{Type: TOKEN_NUMBER, Value: "2"},
				{Type: TOKEN_IDENTIFIER, Value: "e"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"3i",
			[]Token{
				{Type: TOKEN_IMAGINARY, Value: "3"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"2.5i",
			[]Token{
				{Type: TOKEN_IMAGINARY, Value: "2.5"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"3if",
			[]Token{
				{Type: TOKEN_NUMBER, Value: "3"},
				{Type: TOKEN_IDENTIFIER, Value: "if"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				tok := l.NextToken()
				if tok.Type != want.Type {
					t.Errorf("token[%d] type = %s, want %s", i, tok.Type, want.Type)
				}
				if tok.Value != want.Value {
					t.Errorf("token[%d] value = %q, want %q", i, tok.Value, want.Value)
				}
			}
		})
	}
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"+ - * / %", []TokenType{TOKEN_PLUS, TOKEN_MINUS, TOKEN_STAR, TOKEN_SLASH, TOKEN_PERCENT, TOKEN_EOF}},
		{"= == => ! !=", []TokenType{TOKEN_ASSIGN, TOKEN_EQ, TOKEN_FATARROW, TOKEN_NOT, TOKEN_NE, TOKEN_EOF}},
		{"< <= > >=", []TokenType{TOKEN_LT, TOKEN_LE, TOKEN_GT, TOKEN_GE, TOKEN_EOF}},
		{"&& ||", []TokenType{TOKEN_AND, TOKEN_OR, TOKEN_EOF}},
		{"^", []TokenType{TOKEN_CARET, TOKEN_EOF}},
		{"( ) [ ] , ;", []TokenType{TOKEN_LPAREN, TOKEN_RPAREN, TOKEN_LBRACKET, TOKEN_RBRACKET, TOKEN_COMMA, TOKEN_SEMICOLON, TOKEN_EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				tok := l.NextToken()
				if tok.Type != want {
					t.Errorf("token[%d] = %s, want %s", i, tok.Type, want)
				}
			}
		})
	}
}

func TestLexerIllegalBitwise(t *testing.T) {
	// A lone '&' or '|' is illegal; this language only has the
	// short-circuit forms "&&" and "||".
	l := NewLexer("& |")
	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Errorf("'&' = %s, want ILLEGAL", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Errorf("'|' = %s, want ILLEGAL", tok.Type)
	}
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	l := NewLexer("let x foo_bar sin2")
	want := []struct {
		typ TokenType
		val string
	}{
		{TOKEN_LET, "let"},
		{TOKEN_IDENTIFIER, "x"},
		{TOKEN_IDENTIFIER, "foo_bar"},
		{TOKEN_IDENTIFIER, "sin2"},
		{TOKEN_EOF, ""},
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Value != w.val {
			t.Errorf("token[%d] = (%s, %q), want (%s, %q)", i, tok.Type, tok.Value, w.typ, w.val)
		}
	}
}

func TestLexerString(t *testing.T) {
	l := NewLexer(`"hello\nworld" "a\"b" "tab\there"`)
	want := []string{"hello\nworld", "a\"b", "tab\there"}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != TOKEN_STRING {
			t.Errorf("token[%d] type = %s, want STRING", i, tok.Type)
		}
		if tok.Value != w {
			t.Errorf("token[%d] value = %q, want %q", i, tok.Value, w)
		}
	}
}

func TestLexerComment(t *testing.T) {
	l := NewLexer("1 + 2 // this is a comment\n+ 3")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	want := []TokenType{TOKEN_NUMBER, TOKEN_PLUS, TOKEN_NUMBER, TOKEN_PLUS, TOKEN_NUMBER, TOKEN_EOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestLexerPosition(t *testing.T) {
	l := NewLexer("1\n22")
	tok := l.NextToken()
	if tok.Position.Line != 1 {
		t.Errorf("first token line = %d, want 1", tok.Position.Line)
	}
	tok = l.NextToken()
	if tok.Position.Line != 2 {
		t.Errorf("second token line = %d, want 2", tok.Position.Line)
	}
}
