package dotenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ([]Assignment, error) {
	t.Helper()

	tok := NewTokenizer(src)
	p := NewParser(tok, "test.env")

	return p.ParseFile()
}

func TestParser_SimpleAssignments(t *testing.T) {
	got, err := parse(t, "A=1\nB=2\n")
	require.NoError(t, err)

	assert.Equal(t, []Assignment{
		{Name: "A", Value: []Expression{Characters{Text: "1"}}},
		{Name: "B", Value: []Expression{Characters{Text: "2"}}},
	}, got)
}

func TestParser_EmptyValue(t *testing.T) {
	got, err := parse(t, "A=")
	require.NoError(t, err)

	assert.Equal(t, []Assignment{{Name: "A", Value: nil}}, got)
}

func TestParser_EmptyFile(t *testing.T) {
	got, err := parse(t, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParser_SimpleExpansionBecomesIfUnset(t *testing.T) {
	got, err := parse(t, "A=$B")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []Expression{Expansion{Name: "B", Operator: OpIfUnset}}, got[0].Value)
}

func TestParser_MixedLiteralsAndExpansions(t *testing.T) {
	got, err := parse(t, `A=pre$B"mid"post`)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []Expression{
		Characters{Text: "pre"},
		Expansion{Name: "B", Operator: OpIfUnset},
		Characters{Text: "midpost"},
	}, got[0].Value)
}

func TestParser_AllEightOperators(t *testing.T) {
	cases := []struct {
		lexeme string
		op     Operator
	}{
		{"-", OpIfUnset},
		{":-", OpIfUnsetOrNull},
		{"=", OpAssignIfUnset},
		{":=", OpAssignIfUnsetOrNull},
		{"+", OpIfSet},
		{":+", OpIfSetAndNotNull},
		{"?", OpErrorIfUnset},
		{":?", OpErrorIfUnsetOrNull},
	}

	for _, tc := range cases {
		t.Run(tc.lexeme, func(t *testing.T) {
			got, err := parse(t, "A=${B"+tc.lexeme+"word}")
			require.NoError(t, err)
			require.Len(t, got, 1)

			assert.Equal(t, []Expression{
				Expansion{Name: "B", Operator: tc.op, RHS: []Expression{Characters{Text: "word"}}},
			}, got[0].Value)
		})
	}
}

func TestParser_NestedExpansion(t *testing.T) {
	got, err := parse(t, "A=${B:-${C:-fallback}}")
	require.NoError(t, err)
	require.Len(t, got, 1)

	inner := Expansion{Name: "C", Operator: OpIfUnsetOrNull, RHS: []Expression{Characters{Text: "fallback"}}}
	outer := Expansion{Name: "B", Operator: OpIfUnsetOrNull, RHS: []Expression{inner}}

	assert.Equal(t, []Expression{outer}, got[0].Value)
}

func TestParser_BareComplexExpansionHasNoRHS(t *testing.T) {
	got, err := parse(t, "A=${B}")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []Expression{Expansion{Name: "B", Operator: OpIfUnset}}, got[0].Value)
}

func TestParser_InvalidOperatorCharacterIsRejectedByTokenizer(t *testing.T) {
	// '!' is not one of the eight operator lexemes; the tokenizer itself
	// rejects it before the parser ever sees an ExpansionOperator token.
	_, err := parse(t, "A=${B!word}")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.NotNil(t, pe.Syntax)
	assert.Equal(t, ErrInvalidCharacter, pe.Syntax.Kind)
}

func TestParser_WrapsTokenizerSyntaxErrors(t *testing.T) {
	_, err := parse(t, "A='unterminated")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.NotNil(t, pe.Syntax)
	assert.Equal(t, ErrUnterminatedSingleQuotedString, pe.Syntax.Kind)
}
