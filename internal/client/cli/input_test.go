package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  123456  \n"))

	text, err := GetSimpleText(r, "Ticket number", &out)
	require.NoError(t, err)
	assert.Equal(t, "123456", text)
	assert.Contains(t, out.String(), "Ticket number")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("654321"))

	text, err := GetSimpleText(r, "Ticket number", &out)
	require.NoError(t, err)
	assert.Equal(t, "654321", text)
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Ticket number", &out)
	require.Error(t, err)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\nnew value\n"))

	text, err := GetOptionalText(r, "Name", "current", &out)
	require.NoError(t, err)
	assert.Equal(t, "current", text, "empty input keeps the fallback")

	text, err = GetOptionalText(r, "Name", "current", &out)
	require.NoError(t, err)
	assert.Equal(t, "new value", text)
	assert.Contains(t, out.String(), "[current]")
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret1"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword("Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", pw)
	assert.Contains(t, out.String(), "Enter password")
}
