package rules

import (
	"github.com/tsatke/lex"
	"github.com/tsatke/lex/token"
)

func (suite *RulesSuite) TestEmptyInput() {
	suite.assertTokens(``, Standard(), nil)
}

func (suite *RulesSuite) TestSkippedBlanksAndNewLines() {
	sc := New([]Rule{SkipBlanks, NewLine}, lex.WithText(" \n  a\n"))

	expected := []token.Token{
		token.New(token.NewLine, "\n", 1),
		token.New(token.Undefined, "a", 4),
		token.New(token.NewLine, "\n", 5),
		token.New(token.Undefined, "\x00", 6),
		token.New(token.Undefined, "\x00", 6),
	}
	for i, want := range expected {
		suite.Equalf(want, sc.NextToken(), "token %d", i)
	}
}

func (suite *RulesSuite) TestWhitespaceIdentifiersAndIntegers() {
	suite.assertTokens("&    1101 ab0c _", []Rule{Whitespace, Identifier, Integer}, []token.Token{
		token.New(token.Undefined, "&", 0),
		token.New(token.Whitespace, "    ", 1),
		token.New(token.Integer, "1101", 5),
		token.New(token.Whitespace, " ", 9),
		token.New(token.Identifier, "ab0c", 10),
		token.New(token.Whitespace, " ", 14),
		token.New(token.Undefined, "_", 15),
	})
}

func (suite *RulesSuite) TestStandard() {
	suite.assertTokens("x = \"a\\tb\" // note\n42", Standard(), []token.Token{
		token.New(token.Identifier, "x", 0),
		token.New(token.Whitespace, " ", 1),
		token.New(token.Undefined, "=", 2),
		token.New(token.Whitespace, " ", 3),
		token.New(token.String, "a\tb", 4),
		token.New(token.Whitespace, " ", 10),
		token.New(token.Comment, "// note", 11),
		token.New(token.NewLine, "\n", 18),
		token.New(token.Integer, "42", 19),
	})
}

func (suite *RulesSuite) TestCompact() {
	suite.assertTokens("  foo\t'bar' \r\n 7", Compact(), []token.Token{
		token.New(token.Identifier, "foo", 2),
		token.New(token.String, "bar", 6),
		token.New(token.NewLine, "\n", 13),
		token.New(token.Integer, "7", 15),
	})
}

func (suite *RulesSuite) TestStrings() {
	suite.assertTokens(`'a' "b" "it's" 'say "hi"' "a\"b"`, Compact(), []token.Token{
		token.New(token.String, "a", 0),
		token.New(token.String, "b", 4),
		token.New(token.String, "it's", 8),
		token.New(token.String, `say "hi"`, 15),
		token.New(token.String, `a"b`, 26),
	})
}

func (suite *RulesSuite) TestStringErrors() {
	suite.assertTokens(`"abc`, Compact(), []token.Token{
		token.New(token.Error, `incomplete string "abc<EOF>`, 0),
	})
	suite.assertTokens(`"abc\`, Compact(), []token.Token{
		token.New(token.Error, `incomplete string "abc\<EOF>`, 0),
	})
	suite.assertTokens(`"\q" x`, Compact(), []token.Token{
		token.New(token.Error, `unknown escape sequence '\q'`, 0),
		token.New(token.Identifier, "x", 5),
	})
}

func (suite *RulesSuite) TestLineComment() {
	suite.assertTokens("-- a\n-b --", []Rule{LineComment("--"), NewLine, Identifier}, []token.Token{
		token.New(token.Comment, "-- a", 0),
		token.New(token.NewLine, "\n", 4),
		token.New(token.Undefined, "-", 5),
		token.New(token.Identifier, "b", 6),
		token.New(token.Undefined, " ", 7),
		token.New(token.Comment, "--", 8),
	})
}

func (suite *RulesSuite) TestEmptyLineCommentPrefix() {
	suite.assertTokens("a", []Rule{LineComment("")}, []token.Token{
		token.New(token.Undefined, "a", 0),
	})
}

func (suite *RulesSuite) TestUnicode() {
	suite.assertTokens("größe 42", Standard(), []token.Token{
		token.New(token.Identifier, "größe", 0),
		token.New(token.Whitespace, " ", 5),
		token.New(token.Integer, "42", 6),
	})
}

func (suite *RulesSuite) TestCustomEndMarker() {
	sc := Default(lex.WithText("a"), lex.WithEndMarker('¶'))
	got := sc.Tokens().Limit(3).Collect()
	suite.Equal([]token.Token{
		token.New(token.Identifier, "a", 0),
		token.New(token.Undefined, "¶", 1),
		token.New(token.Undefined, "¶", 1),
	}, got)
	suite.True(IsEnd(got[1], '¶', 1))
	suite.False(IsEnd(got[0], '¶', 1))
}

func (suite *RulesSuite) TestRelex() {
	text := "abc 12 // c\n'x'"
	sc := Default(lex.WithText(text))
	first := sc.Tokens().Until(UntilEnd(text, lex.DefaultEndMarker)).Collect()
	sc.Rewind()
	second := sc.Tokens().Until(UntilEnd(text, lex.DefaultEndMarker)).Collect()
	suite.Equal(first, second)
	suite.Len(first, 7)
}

func (suite *RulesSuite) TestEndMarkerInsideText() {
	suite.assertTokens("a\x00b c", Standard(), []token.Token{
		token.New(token.Identifier, "a", 0),
		token.New(token.Undefined, "\x00", 1),
		token.New(token.Identifier, "b", 2),
		token.New(token.Whitespace, " ", 3),
		token.New(token.Identifier, "c", 4),
	})

	suite.False(IsEnd(token.New(token.Undefined, "\x00", 1), lex.DefaultEndMarker, 5))
	suite.True(IsEnd(token.New(token.Undefined, "\x00", 5), lex.DefaultEndMarker, 5))
}

func (suite *RulesSuite) TestMultibyteUnknownEscape() {
	suite.assertTokens(`"\é"`, Compact(), []token.Token{
		token.New(token.Error, `unknown escape sequence '\é'`, 0),
	})
}
