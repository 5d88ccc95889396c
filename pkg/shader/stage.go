package shader

import "fmt"

// Stage selects the section that source lines are appended to.
type Stage int

const (
	StageUnset Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageUnset:
		return "unset"
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ParseStage maps a marker name to its stage. Names are case sensitive.
func ParseStage(name string) (Stage, bool) {
	switch name {
	case "vertex":
		return StageVertex, true
	case "fragment":
		return StageFragment, true
	default:
		return StageUnset, false
	}
}
