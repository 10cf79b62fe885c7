package options

import (
	"fmt"

	"go.uber.org/multierr"

	"gitlab.com/youtopia.earth/ops/snip-please/decode"
)

const OriginDefault = "default"

type Value struct {
	Definition *Definition
	Raw        interface{}
	Origin     string
}

// Display returns the value as printable text, secrets are masked.
func (v *Value) Display() string {
	if v.Raw == nil {
		return ""
	}
	if v.Definition.Secret {
		return "********"
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Resolver looks options up in its layers in order, the first layer holding
// a value wins, then the definition default applies.
type Resolver struct {
	definitions []*Definition
	byName      map[string]*Definition
	layers      []*Layer
}

func NewResolver(definitions []*Definition, layers ...*Layer) *Resolver {
	r := &Resolver{
		definitions: definitions,
		byName:      make(map[string]*Definition, len(definitions)),
		layers:      layers,
	}
	for _, def := range definitions {
		r.byName[def.Name] = def
	}
	return r
}

func (r *Resolver) Definition(name string) (*Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

func (r *Resolver) Lookup(name string) (*Value, bool) {
	def, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	for _, layer := range r.layers {
		if raw, key, found := layer.lookup(def); found {
			return &Value{
				Definition: def,
				Raw:        raw,
				Origin:     layer.Name + ": " + key,
			}, true
		}
	}
	return &Value{
		Definition: def,
		Raw:        def.Default,
		Origin:     OriginDefault,
	}, true
}

func (r *Resolver) Get(name string) interface{} {
	v, ok := r.Lookup(name)
	if !ok {
		return nil
	}
	return v.Raw
}

// Values returns every option in definition order.
func (r *Resolver) Values() []*Value {
	values := make([]*Value, 0, len(r.definitions))
	for _, def := range r.definitions {
		v, _ := r.Lookup(def.Name)
		values = append(values, v)
	}
	return values
}

// Decode resolves all options and decodes them into out, a pointer to a
// struct with mapstructure tags named after the options.
func (r *Resolver) Decode(out interface{}) error {
	var errs error
	m := make(map[string]interface{}, len(r.definitions))
	for _, v := range r.Values() {
		if v.Raw == nil {
			continue
		}
		raw := v.Raw
		if v.Definition.Type == TypeList {
			list, err := decode.ToStrings(raw)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("option %s (%s): %w", v.Definition.Name, v.Origin, err))
				continue
			}
			raw = list
		}
		m[v.Definition.Name] = raw
	}
	if errs != nil {
		return errs
	}
	return decode.ToStruct(m, out)
}
