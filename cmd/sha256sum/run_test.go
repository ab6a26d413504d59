package main

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func runOut(t *testing.T, stdin string, argv ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(argv, strings.NewReader(stdin), &out)
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestDemoDefault(t *testing.T) {
	t.Setenv("SHA256_SAMPLE", "Hello, World!")
	out, err := runOut(t, "")
	require.NoError(t, err)
	require.Equal(t,
		"SHA-256 hash of 'Hello, World!': dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f\n",
		out)
	again, err := runOut(t, "", "demo")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestDemoFromEnvFile(t *testing.T) {
	envFile := writeFile(t, t.TempDir(), "sha256.env", []byte("SHA256_SAMPLE=\"abc\"\n"))
	out, err := runOut(t, "", "--env-file", envFile, "demo")
	require.NoError(t, err)
	require.Equal(t,
		"SHA-256 hash of 'abc': ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n",
		out)
}

func TestSumFilesAndStdin(t *testing.T) {
	dir := t.TempDir()
	content := frand.Bytes(200000)
	a := writeFile(t, dir, "a.bin", content)
	b := writeFile(t, dir, "empty", nil)
	out, err := runOut(t, "abc", "sum", a, b, "-")
	require.NoError(t, err)
	want := stdsha256.Sum256(content)
	require.Equal(t, fmt.Sprintf("%x  %s\n%s  %s\n%s  -\n",
		want, a,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", b,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	), out)

	out, err = runOut(t, "abc", "sum")
	require.NoError(t, err)
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  -\n", out)
}

func TestSumSmallBuffer(t *testing.T) {
	envFile := writeFile(t, t.TempDir(), "sha256.env", []byte("SHA256_BUFFER_SIZE=7\n"))
	content := frand.Bytes(1000)
	path := writeFile(t, t.TempDir(), "f", content)
	out, err := runOut(t, "", "--env-file", envFile, "sum", path)
	require.NoError(t, err)
	want := stdsha256.Sum256(content)
	require.True(t, strings.HasPrefix(out, hex.EncodeToString(want[:])))
}

func TestSumMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good", []byte("abc"))
	out, err := runOut(t, "", "sum", filepath.Join(dir, "missing"), good)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 files")
	require.Contains(t, out, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  "+good)
}

func TestCompare(t *testing.T) {
	out, err := runOut(t, "", "compare", "Hello, World!")
	require.NoError(t, err)
	require.Contains(t, out, "Engine hash:    dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f")
	require.Contains(t, out, "Hash match:     true")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", []byte("abc"))
	b := writeFile(t, dir, "b", []byte("changed"))
	list := fmt.Sprintf("%s  %s\n%s *%s\n\n",
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", a,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", b)
	sums := writeFile(t, dir, "SHA256SUMS", []byte(list))
	out, err := runOut(t, "", "check", sums)
	require.Error(t, err)
	require.Equal(t, a+": OK\n"+b+": FAILED\n", out)

	good := writeFile(t, dir, "GOOD", []byte(strings.SplitAfter(list, "\n")[0]))
	out, err = runOut(t, "", "check", good)
	require.NoError(t, err)
	require.Equal(t, a+": OK\n", out)
}

func TestCheckRejectsEmptyList(t *testing.T) {
	sums := writeFile(t, t.TempDir(), "SHA256SUMS", []byte("not a checksum line\n"))
	_, err := runOut(t, "", "check", sums)
	require.Error(t, err)
}

func TestParseSumLine(t *testing.T) {
	d, name, err := parseSumLine("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  some file.txt")
	require.NoError(t, err)
	require.Equal(t, "some file.txt", name)
	require.Equal(t, stdsha256.Sum256(nil), d)
	_, _, err = parseSumLine("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	require.Error(t, err)
	_, _, err = parseSumLine("xyz  file")
	require.Error(t, err)
}

func TestEnvCommands(t *testing.T) {
	out, err := runOut(t, "", "env")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "#!/usr/bin/env bash\n"))
	require.Contains(t, out, "export SHA256_BUFFER_SIZE=")

	out, err = runOut(t, "", "help-env")
	require.NoError(t, err)
	require.Contains(t, out, "SHA256_LOG_LEVEL")
}

func TestHelpAndBadArgs(t *testing.T) {
	out, err := runOut(t, "", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "compare")

	_, err = runOut(t, "", "--no-such-flag")
	require.Error(t, err)
}

func TestCheckSkipsCorruptDigestLines(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", []byte("abc"))
	corrupt := "gg7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	list := fmt.Sprintf("%s  %s\n%s  %s\n",
		corrupt, a,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", a)
	sums := writeFile(t, dir, "SHA256SUMS", []byte(list))
	out, err := runOut(t, "", "check", sums)
	require.NoError(t, err)
	require.Equal(t, a+": OK\n", out)
	require.NotContains(t, out, "FAILED")
}
