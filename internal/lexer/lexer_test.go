package lexer

import "testing"

func TestScanTokensBasic(t *testing.T) {
	input := `var a = "g";
{ fun f(){ print a; } }`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{VAR, "var"},
		{IDENTIFIER, "a"},
		{EQUAL, "="},
		{STRING, `"g"`},
		{SEMICOLON, ";"},
		{LEFT_BRACE, "{"},
		{FUN, "fun"},
		{IDENTIFIER, "f"},
		{LEFT_PAREN, "("},
		{RIGHT_PAREN, ")"},
		{LEFT_BRACE, "{"},
		{PRINT, "print"},
		{IDENTIFIER, "a"},
		{SEMICOLON, ";"},
		{RIGHT_BRACE, "}"},
		{RIGHT_BRACE, "}"},
		{EOF, ""},
	}

	l := New(input, nil)
	tokens := l.ScanTokens()

	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(tests), len(tokens), tokens)
	}

	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType {
			t.Errorf("token[%d] type = %v, want %v", i, tokens[i].Type, tt.expectedType)
		}
		if tokens[i].Lexeme != tt.expectedLexeme {
			t.Errorf("token[%d] lexeme = %q, want %q", i, tokens[i].Lexeme, tt.expectedLexeme)
		}
	}
}

func TestScanNumberLiteral(t *testing.T) {
	tokens := New("123 45.67", nil).ScanTokens()
	if tokens[0].Literal.(float64) != 123 {
		t.Errorf("got %v, want 123", tokens[0].Literal)
	}
	if tokens[1].Literal.(float64) != 45.67 {
		t.Errorf("got %v, want 45.67", tokens[1].Literal)
	}
}

func TestNestedBlockComment(t *testing.T) {
	var errs []string
	rep := reporterFunc(func(line int, msg string) { errs = append(errs, msg) })
	tokens := New("/* outer /* inner */ still outer */ print 1;", rep).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != PRINT {
		t.Fatalf("expected comment to be fully skipped, got %v first", tokens[0].Type)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	var errs []string
	rep := reporterFunc(func(line int, msg string) { errs = append(errs, msg) })
	New("/* never closes", rep).ScanTokens()
	if len(errs) != 1 || errs[0] != "Unterminated block comment." {
		t.Fatalf("got errors %v", errs)
	}
}

func TestUnterminatedString(t *testing.T) {
	var errs []string
	rep := reporterFunc(func(line int, msg string) { errs = append(errs, msg) })
	New(`"never closes`, rep).ScanTokens()
	if len(errs) != 1 || errs[0] != "Unterminated string." {
		t.Fatalf("got errors %v", errs)
	}
}

func TestLineCommentToEndOfLine(t *testing.T) {
	tokens := New("print 1; // trailing\nprint 2;", nil).ScanTokens()
	var kinds []TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	want := []TokenType{PRINT, NUMBER, SEMICOLON, PRINT, NUMBER, SEMICOLON, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v", kinds)
	}
}

type reporterFunc func(line int, message string)

func (f reporterFunc) Error(line int, message string) { f(line, message) }
