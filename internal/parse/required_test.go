package parse

import (
	"testing"

	"github.com/dbai-tuwien/setafrup/internal/store"
	"github.com/stretchr/testify/require"
)

func TestParseRequiredSignedNumbers(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "required.txt", "1\n-2\n")

	required, err := ParseRequired(path, 2, nil)
	require.NoError(t, err)
	require.Equal(t, []store.Literal{
		{Argument: 0, Sign: true},
		{Argument: 1, Sign: false},
	}, required)
}

func TestParseRequiredByNameKeepsSpaces(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "required.txt", "s -the first argument\n")

	names := map[string]nameEntry{"the first argument": {index: 0}}
	required, err := ParseRequired(path, 3, names)
	require.NoError(t, err)
	require.Equal(t, []store.Literal{{Argument: 0, Sign: false}}, required)
}

func TestParseRequiredRejectsAmbiguousName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "required.txt", "s foo\n")

	names := map[string]nameEntry{"foo": {index: 0, ambiguous: true}}
	_, err := ParseRequired(path, 1, names)
	require.Error(t, err)
}

func TestParseRequiredRejectsOutOfRangeNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "required.txt", "3\n")

	_, err := ParseRequired(path, 2, nil)
	require.Error(t, err)
}

func TestRequiredConsistent(t *testing.T) {
	require.True(t, RequiredConsistent(nil))
	require.True(t, RequiredConsistent([]store.Literal{
		{Argument: 0, Sign: true},
		{Argument: 0, Sign: true},
		{Argument: 1, Sign: false},
	}))
	require.False(t, RequiredConsistent([]store.Literal{
		{Argument: 0, Sign: true},
		{Argument: 0, Sign: false},
	}))
}
