package options

const (
	TypeString = "string"
	TypeList   = "list"
)

type IniKey struct {
	Section string
	Key     string
}

func (k IniKey) String() string {
	return k.Section + "." + k.Key
}

// Definition describes one option and the names it is looked up by in each
// source. Later names of a list take precedence over earlier ones.
type Definition struct {
	Name        string
	Description string
	Type        string
	Default     interface{}
	Secret      bool

	Keywords []string
	Vars     []string
	Env      []string
	Ini      []IniKey
}

func (def *Definition) IniKeys() []string {
	keys := make([]string, len(def.Ini))
	for i, k := range def.Ini {
		keys[i] = k.String()
	}
	return keys
}
