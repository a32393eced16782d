package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict(t *testing.T) {
	var d Dictionary
	assert.Zero(t, DictCount(d))

	require.GreaterOrEqual(t, DictSet(&d, "movflags", "faststart", 0), 0)
	require.GreaterOrEqual(t, DictSet(&d, "brand", "isom", 0), 0)
	require.NotNil(t, d)
	assert.Equal(t, 2, DictCount(d))

	var got [][2]string
	DictEntries(d, func(k, v string) {
		got = append(got, [2]string{k, v})
	})
	assert.Equal(t, [][2]string{{"movflags", "faststart"}, {"brand", "isom"}}, got)

	// Setting an existing key replaces it.
	require.GreaterOrEqual(t, DictSet(&d, "brand", "mp42", 0), 0)
	assert.Equal(t, 2, DictCount(d))

	DictFree(&d)
	assert.Nil(t, d)
}

func TestDictEntries_Nil(t *testing.T) {
	called := false
	DictEntries(nil, func(string, string) { called = true })
	assert.False(t, called)
}
