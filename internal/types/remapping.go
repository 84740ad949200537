package types

// Remapping rewrites import references that begin with Prefix to resolve
// under Target, so cross-library imports work without matching physical
// paths. The canonical text form is "prefix=target".
type Remapping struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	Target string `yaml:"target" json:"target"`
}

func (r Remapping) String() string {
	return r.Prefix + "=" + r.Target
}

// Less orders remappings by prefix, then target, the order the resolved
// remapping set is kept in.
func (r Remapping) Less(other Remapping) bool {
	if r.Prefix != other.Prefix {
		return r.Prefix < other.Prefix
	}
	return r.Target < other.Target
}
