package remediate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s4lift/s4lift/pkg/catalog"
)

func TestInjectOrderBy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "select star",
			in:   "SELECT * FROM MATDOC.",
			want: "SELECT * FROM MATDOC ORDER BY PRIMARY KEY.",
		},
		{
			name: "named fields",
			in:   "SELECT matnr werks FROM MATDOC.",
			want: "SELECT matnr werks FROM MATDOC ORDER BY matnr werks.",
		},
		{
			name: "already ordered",
			in:   "SELECT * FROM MATDOC ORDER BY mblnr.",
			want: "SELECT * FROM MATDOC ORDER BY mblnr.",
		},
		{
			name: "no select",
			in:   "WRITE: / 'hello'.",
			want: "WRITE: / 'hello'.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InjectOrderBy(tt.in))
		})
	}
}

func TestInjectOrderByDisabledByDefault(t *testing.T) {
	e := newTestEngine(t)

	out, _ := e.Remediate("SELECT * FROM MATDOC.")
	assert.Equal(t, "SELECT * FROM MATDOC.", out, "no injection without the option")
}

func TestInjectOrderByEngineOption(t *testing.T) {
	e, err := New(catalog.Default(), WithClock(fixedClock), WithOrderByInjection())
	require.NoError(t, err)

	// MATDOC is not in the vocabulary, so the rewrite pass leaves the text
	// alone and the injection pass appends the clause.
	out, issues := e.Remediate("SELECT * FROM MATDOC.")
	assert.Empty(t, issues)
	assert.Equal(t, "SELECT * FROM MATDOC ORDER BY PRIMARY KEY.", out)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, isIdentifier("matnr"))
	assert.True(t, isIdentifier("_werks"))
	assert.True(t, isIdentifier("f1"))
	assert.False(t, isIdentifier(""))
	assert.False(t, isIdentifier("1abc"))
	assert.False(t, isIdentifier("a-b"))
	assert.False(t, isIdentifier("*"))
}
