package options

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"gitlab.com/youtopia.earth/ops/snip-please/tools"
)

const (
	LayerKeyword = "keyword"
	LayerVars    = "vars"
	LayerEnv     = "env"
	LayerIni     = "ini"
)

// Layer is one pre-collected source of option values.
type Layer struct {
	Name   string
	Values map[string]interface{}
	Keys   func(*Definition) []string
}

func (l *Layer) lookup(def *Definition) (interface{}, string, bool) {
	if l == nil || l.Values == nil {
		return nil, "", false
	}
	keys := l.Keys(def)
	for i := len(keys) - 1; i >= 0; i-- {
		if v, ok := l.Values[keys[i]]; ok && v != nil {
			return v, keys[i], true
		}
	}
	return nil, "", false
}

func KeywordLayer(values map[string]interface{}) *Layer {
	return &Layer{
		Name:   LayerKeyword,
		Values: values,
		Keys: func(def *Definition) []string {
			return def.Keywords
		},
	}
}

func VarsLayer(values map[string]interface{}) *Layer {
	return &Layer{
		Name:   LayerVars,
		Values: values,
		Keys: func(def *Definition) []string {
			return def.Vars
		},
	}
}

// EnvLayer takes os.Environ() style pairs, empty values are ignored.
func EnvLayer(environ []string) *Layer {
	values := make(map[string]interface{})
	for k, v := range tools.EnvToMap(environ) {
		if v != "" {
			values[k] = v
		}
	}
	return &Layer{
		Name:   LayerEnv,
		Values: values,
		Keys: func(def *Definition) []string {
			return def.Env
		},
	}
}

func IniLayer(file *ini.File) *Layer {
	values := make(map[string]interface{})
	if file != nil {
		for _, section := range file.Sections() {
			for _, key := range section.Keys() {
				values[IniKey{section.Name(), key.Name()}.String()] = key.Value()
			}
		}
	}
	return &Layer{
		Name:   LayerIni,
		Values: values,
		Keys: func(def *Definition) []string {
			return def.IniKeys()
		},
	}
}

// LoadIniLayer reads an ini file, a missing file gives an empty layer.
func LoadIniLayer(filename string) (*Layer, error) {
	if filename == "" {
		return IniLayer(nil), nil
	}
	ok, err := tools.FileExists(filename)
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Debugf("ini file %q not found", filename)
		return IniLayer(nil), nil
	}
	file, err := ini.LoadSources(ini.LoadOptions{
		SpaceBeforeInlineComment: true,
	}, filename)
	if err != nil {
		return nil, fmt.Errorf("unable to load ini file %q: %w", filename, err)
	}
	return IniLayer(file), nil
}
