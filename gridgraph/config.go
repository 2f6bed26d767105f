package gridgraph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadConfig decodes a YAML grid description:
//
//	size: 5
//	obstacles: [[1, 1], [1, 2], [1, 3]]
//
// Obstacles may also be written as mappings ({x: 1, y: 2}).
// The result is not validated; pass it to NewGrid.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return Config{}, fmt.Errorf("%w: empty document", ErrInvalidConfiguration)
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	return cfg, nil
}

// WriteConfig encodes cfg as YAML in the format accepted by LoadConfig.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// UnmarshalYAML accepts either a two-element sequence [x, y] or a mapping {x, y}.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []int
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: cell needs exactly 2 coordinates, got %d", node.Line, len(xy))
		}
		c.X, c.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		return c.decodeMapping(node)
	default:
		return fmt.Errorf("line %d: cell must be [x, y] or {x, y}", node.Line)
	}
}

// decodeMapping reads {x, y}; both keys are required and no other key is allowed.
func (c *Cell) decodeMapping(node *yaml.Node) error {
	var seenX, seenY bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var dst *int
		switch key.Value {
		case "x":
			if seenX {
				return fmt.Errorf("line %d: duplicate key x", key.Line)
			}
			seenX, dst = true, &c.X
		case "y":
			if seenY {
				return fmt.Errorf("line %d: duplicate key y", key.Line)
			}
			seenY, dst = true, &c.Y
		default:
			return fmt.Errorf("line %d: unknown cell key %q", key.Line, key.Value)
		}
		if err := val.Decode(dst); err != nil {
			return err
		}
	}
	if !seenX || !seenY {
		return fmt.Errorf("line %d: cell needs both x and y", node.Line)
	}

	return nil
}

// MarshalYAML writes the cell as a flow sequence [x, y].
func (c Cell) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range [2]int{c.X, c.Y} {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprint(v),
		})
	}
	return n, nil
}
