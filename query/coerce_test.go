package query

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUint(t *testing.T) {
	d := mustParse(t, `{
		ham = 0x11,
		big = 0x1ff,
		bin = 0b1010,
		oct = 0o17,
		dec = 1_000,
	}`)

	v, err := GetUint(d, "ham", 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(17), v)

	v, err = GetUint(d, "bin", 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), v)

	v, err = GetUint(d, "oct", 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), v)

	v, err = GetUint(d, "dec", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), v)

	_, err = GetUint(d, "big", 8)
	assert.ErrorIs(t, err, ErrNumberRange)

	v, err = GetUint(d, "big", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(511), v)
}

func TestGetInt(t *testing.T) {
	d := mustParse(t, `{
		foo = -1000,
		pos = 42,
		hexneg = -0x10,
		frac = 12.5,
		word = banana,
	}`)

	v, err := GetInt(d, "foo", 16)
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), v)

	v, err = GetInt(d, "pos", 8)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = GetInt(d, "hexneg", 8)
	require.NoError(t, err)
	assert.Equal(t, int64(-16), v)

	_, err = GetInt(d, "foo", 8)
	assert.ErrorIs(t, err, ErrNumberRange)

	_, err = GetInt(d, "frac", 64)
	assert.ErrorIs(t, err, ErrBadNumber)

	_, err = GetInt(d, "word", 64)
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestGetFloat(t *testing.T) {
	d := mustParse(t, `{
		f = -10.0,
		e = 2.5e3,
		i = 7,
		word = banana,
	}`)

	v, err := GetFloat(d, "f", 64)
	require.NoError(t, err)
	assert.Equal(t, -10.0, v)

	v, err = GetFloat(d, "e", 64)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, v)

	v, err = GetFloat(d, "i", 32)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = GetFloat(d, "word", 64)
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestGetString(t *testing.T) {
	d := mustParse(t, `{
		name = "alice",
		bare = hello,
		neg = -1000,
		empty = "",
	}`)

	s, err := GetString(d, "name")
	require.NoError(t, err)
	assert.Equal(t, "alice", s)

	s, err = GetString(d, "bare")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = GetString(d, "neg")
	require.NoError(t, err)
	assert.Equal(t, "-1000", s)

	s, err = GetString(d, "empty")
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestGetBool(t *testing.T) {
	d := mustParse(t, `{
		on = true,
		off = false,
		quoted = "true",
		bad = yes,
		num = 1,
	}`)

	v, err := GetBool(d, "on")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = GetBool(d, "off")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = GetBool(d, "quoted")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = GetBool(d, "bad")
	assert.ErrorIs(t, err, ErrBadBool)

	_, err = GetBool(d, "num")
	assert.ErrorIs(t, err, ErrBadBool)
}

func TestGetChar(t *testing.T) {
	d := mustParse(t, `{
		character_1 = 'A',
		bare = x,
		digit = 7,
		long = 'ABC',
		str = "ab",
	}`)

	c, err := GetChar(d, "character_1")
	require.NoError(t, err)
	assert.Equal(t, byte('A'), c)

	c, err = GetChar(d, "bare")
	require.NoError(t, err)
	assert.Equal(t, byte('x'), c)

	c, err = GetChar(d, "digit")
	require.NoError(t, err)
	assert.Equal(t, byte('7'), c)

	_, err = GetChar(d, "long")
	assert.ErrorIs(t, err, ErrBadChar)

	_, err = GetChar(d, "str")
	assert.ErrorIs(t, err, ErrBadChar)
}

func TestIntStringRoundTrip(t *testing.T) {
	d := mustParse(t, `{ n = -12345 }`)

	s, err := GetString(d, "n")
	require.NoError(t, err)

	fromStr, err := strconv.ParseInt(s, 0, 64)
	require.NoError(t, err)

	fromInt, err := GetInt(d, "n", 64)
	require.NoError(t, err)

	assert.Equal(t, fromStr, fromInt)
}

func TestCoerceErrorsPassThrough(t *testing.T) {
	d := mustParse(t, `{ a = 1 }`)

	_, err := GetInt(d, "missing", 64)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = GetString(d, "a[0]")
	assert.ErrorIs(t, err, ErrNotArray)
}
