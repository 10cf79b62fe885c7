package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadViperDefaults(t *testing.T) {
	cl := NewConfigLoader()
	cl.SetEnvPrefix("SNIP_PLEASE_TEST_DEFAULTS")
	cl.InitViper()
	cl.LoadViper()

	cfg := cl.GetConfig()
	assert.Equal(t, "please", cfg.BecomeMethod)
	assert.Equal(t, "snip.ini", cfg.IniFile)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "/bin/sh", cfg.Shell)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadViperEnv(t *testing.T) {
	prefix := "SNIP_PLEASE_TEST_ENV"
	os.Setenv(prefix+"_TIMEOUT", "1m")
	os.Setenv(prefix+"_INI_FILE", "/etc/snip.ini")
	defer os.Unsetenv(prefix + "_TIMEOUT")
	defer os.Unsetenv(prefix + "_INI_FILE")

	cl := NewConfigLoader()
	cl.SetEnvPrefix(prefix)
	cl.InitViper()
	cl.LoadViper()

	assert.Equal(t, time.Minute, cl.Config.Timeout)
	assert.Equal(t, "/etc/snip.ini", cl.Config.IniFile)
}

func TestLoadVarsFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "snip-please-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "vars.yml")
	require.NoError(t, ioutil.WriteFile(file, []byte(`
please_user: deploy
please_prompt_l10n:
  - Mot de passe
  - Passwort
`), 0644))

	vars, err := LoadVarsFile(file)
	require.NoError(t, err)
	assert.Equal(t, "deploy", vars["please_user"])
	assert.Equal(t, []interface{}{"Mot de passe", "Passwort"}, vars["please_prompt_l10n"])

	vars, err = LoadVarsFile("")
	require.NoError(t, err)
	assert.Empty(t, vars)

	_, err = LoadVarsFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
