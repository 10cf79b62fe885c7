package become

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identity = SuccessWrapperFunc(func(cmd string) string { return cmd })

func TestBuildCommand(t *testing.T) {
	cfg := &Config{
		Exe:   "please",
		Flags: "",
		User:  "deploy",
	}
	res := BuildCommand("echo OK", identity, cfg)
	assert.Equal(t, "please -u deploy echo OK", res.Command)
	assert.True(t, res.RequiresPromptScan)
}

func TestBuildCommandFlags(t *testing.T) {
	cfg := &Config{
		Exe:   "/usr/local/bin/please",
		Flags: " -n ",
		User:  "deploy",
	}
	res := BuildCommand("echo OK", identity, cfg)
	assert.Equal(t, "/usr/local/bin/please -n -u deploy echo OK", res.Command)
}

func TestBuildCommandDefaults(t *testing.T) {
	res := BuildCommand("id", identity, &Config{})
	assert.Equal(t, "please -u root id", res.Command)

	res = BuildCommand("id", identity, nil)
	assert.Equal(t, "please -u root id", res.Command)
}

func TestBuildCommandEmpty(t *testing.T) {
	called := false
	wrapper := SuccessWrapperFunc(func(cmd string) string {
		called = true
		return cmd
	})
	res := BuildCommand("", wrapper, &Config{User: "deploy"})
	assert.Equal(t, "", res.Command)
	assert.True(t, res.RequiresPromptScan)
	assert.False(t, called)
}

func TestBuildCommandWrapsOnce(t *testing.T) {
	var got []string
	wrapper := SuccessWrapperFunc(func(cmd string) string {
		got = append(got, cmd)
		return "W(" + cmd + ")"
	})
	res := BuildCommand("ls -la", wrapper, &Config{User: "deploy"})
	assert.Equal(t, []string{"ls -la"}, got)
	assert.Equal(t, "please -u deploy W(ls -la)", res.Command)
}

func TestBuildCommandSentinelWrapper(t *testing.T) {
	w, err := NewSentinelWrapper("")
	require.NoError(t, err)

	res := BuildCommand("echo OK", w, &Config{User: "deploy"})
	assert.Equal(t, "please -u deploy /bin/sh -c 'echo "+w.Sentinel+"; echo OK'", res.Command)
}

func TestSentinelWrapper(t *testing.T) {
	w, err := NewSentinelWrapper("/bin/bash")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(w.Sentinel, SuccessPrefix))
	suffix := strings.TrimPrefix(w.Sentinel, SuccessPrefix)
	assert.Len(t, suffix, 32)
	assert.Equal(t, strings.ToLower(suffix), suffix)

	other, err := NewSentinelWrapper("")
	require.NoError(t, err)
	assert.NotEqual(t, w.Sentinel, other.Sentinel)
	assert.Equal(t, DefaultShell, other.Shell)

	assert.Equal(t, `/bin/bash -c 'echo `+w.Sentinel+`; it'\''s'`, w.WrapSuccess("it's"))

	assert.True(t, w.CheckSuccess([]byte("\r\n"+w.Sentinel+"  \r\nok\n")))
	assert.False(t, w.CheckSuccess([]byte("[please] password: ")))
	assert.False(t, w.CheckSuccess(nil))
}

func TestCheckIncorrectPassword(t *testing.T) {
	fail := []string{"Authentication failed :-("}
	assert.True(t, CheckIncorrectPassword([]byte("\r\nAuthentication failed :-(\r\n"), fail))
	assert.False(t, CheckIncorrectPassword([]byte("ok"), fail))
	assert.False(t, CheckIncorrectPassword([]byte("ok"), []string{""}))
	assert.False(t, CheckIncorrectPassword([]byte("ok"), nil))
}
