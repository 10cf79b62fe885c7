package become

import (
	"fmt"

	"gitlab.com/youtopia.earth/ops/snip-please/become"
	"gitlab.com/youtopia.earth/ops/snip-please/options"
)

type Plugin struct {
	Name    string
	Options []*options.Definition
	// Fail holds the messages printed by the become utility on a wrong password.
	Fail []string

	Build               func(*Config) (*become.Result, error)
	CheckPasswordPrompt func(*Config, []byte) (bool, error)
}

// Resolve decodes the plugin options found by the layers into a become.Config.
func (p *Plugin) Resolve(layers ...*options.Layer) (*become.Config, *options.Resolver, error) {
	r := options.NewResolver(p.Options, layers...)
	cfg := &become.Config{}
	if err := r.Decode(cfg); err != nil {
		return nil, r, fmt.Errorf("invalid %s become options: %w", p.Name, err)
	}
	return cfg, r, nil
}
