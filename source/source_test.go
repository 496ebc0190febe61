package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cero-lang/cero/source"
)

func TestLocateBasic(t *testing.T) {
	src := source.New("main.cero", []byte("ab\ncd\nef"))

	assert.Equal(t, source.Location{File: "main.cero", Line: 1, Column: 1}, src.Locate(0))
	assert.Equal(t, source.Location{File: "main.cero", Line: 1, Column: 3}, src.Locate(2))
	assert.Equal(t, source.Location{File: "main.cero", Line: 2, Column: 1}, src.Locate(3))
	assert.Equal(t, source.Location{File: "main.cero", Line: 3, Column: 2}, src.Locate(7))
}

func TestLocatePastEnd(t *testing.T) {
	src := source.New("main.cero", []byte("ab\ncd"))
	loc := src.Locate(1000)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 3, loc.Column)
}

func TestLocateTab(t *testing.T) {
	src := source.NewWithTabWidth("t.cero", []byte("\tx"), 4)
	// A tab at column 1 advances to column 1+tabWidth for what follows.
	assert.Equal(t, 1, src.Locate(0).Column)
	assert.Equal(t, 5, src.Locate(1).Column)
}

func TestTooLarge(t *testing.T) {
	big := strings.Repeat("a", source.MaxLength+1)
	src := source.New("big.cero", []byte(big))
	require.True(t, src.TooLarge())

	small := source.New("small.cero", []byte("a"))
	require.False(t, small.TooLarge())
}

func TestLocationString(t *testing.T) {
	loc := source.Location{File: "a.cero", Line: 3, Column: 5}
	assert.Equal(t, "a.cero:3:5", loc.String())
}
