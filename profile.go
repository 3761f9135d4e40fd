package wrapio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile is a named margin preset. CLI tools typically keep one profile per
// output surface (help text, usage lines, log tails) and load them from a
// YAML document:
//
//	help:
//	  lmargin: 2
//	  rmargin: 79
//	  indent: 4
//	log:
//	  rmargin: 120
//	  truncate: true
//
// Indent is the wrap margin for continuation lines; set Truncate to drop
// overflow instead of wrapping, in which case Indent must be zero.
type Profile struct {
	LMargin  int  `yaml:"lmargin"`
	RMargin  int  `yaml:"rmargin"`
	Indent   int  `yaml:"indent"`
	Truncate bool `yaml:"truncate"`
}

// WrapMargin returns the wrap margin the profile selects: [NoWrap] when
// truncating, Indent otherwise.
func (p Profile) WrapMargin() int {
	if p.Truncate {
		return NoWrap
	}
	return p.Indent
}

// New returns a Stream writing to w with the profile's margins.
func (p Profile) New(w io.Writer) (*Stream, error) {
	return New(w, p.LMargin, p.RMargin, p.WrapMargin())
}

// ParseProfiles decodes a YAML document mapping profile names to margin
// presets. Margin values are validated lazily by [Profile.New]; this only
// rejects documents that are not well-formed or combine truncate with a
// continuation indent.
func ParseProfiles(data []byte) (map[string]Profile, error) {
	var out map[string]Profile
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfile, err)
	}
	for name, p := range out {
		if p.Truncate && p.Indent != 0 {
			return nil, fmt.Errorf("%w: %q sets both truncate and indent", ErrProfile, name)
		}
	}
	return out, nil
}
