package dotenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKind_String(t *testing.T) {
	cases := map[TokenKind]string{
		TokenEOF:               "EOF",
		TokenCharacters:        "Characters",
		TokenAssign:            "Assign",
		TokenSimpleExpansion:   "SimpleExpansion",
		TokenStartExpansion:    "StartExpansion",
		TokenExpansionOperator: "ExpansionOperator",
		TokenEndExpansion:      "EndExpansion",
	}

	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "EOF", Token{Kind: TokenEOF}.String())
	assert.Equal(t, "Characters(abc)", Token{Kind: TokenCharacters, Value: "abc"}.String())
}
