package asm

import (
	"fmt"
	"regexp"
	"strconv"
)

// Group is a label group letter.
type Group int

//go:generate go tool stringer -linecomment -type=Group
const (
	GROUP_A = Group(0) // A
	GROUP_B = Group(1) // B
	GROUP_C = Group(2) // C
	GROUP_D = Group(3) // D
	GROUP_E = Group(4) // E

	GROUP_COUNT = 5
)

// Label is a jump target: a group letter A..E and a non-negative number.
// Both user-written labels and compiler-generated ones use this form.
type Label struct {
	Group  Group
	Number int
}

var labelRe = regexp.MustCompile(`^([A-E])(\d+)$`)

// ParseLabel parses a label token such as "A3".
func ParseLabel(token string) (l Label, err error) {
	caps := labelRe.FindStringSubmatch(token)
	if caps == nil {
		err = ErrLabelInvalid(token)
		return
	}

	number, err := strconv.Atoi(caps[2])
	if err != nil {
		err = ErrLabelInvalid(token)
		return
	}

	l = Label{Group: Group(caps[1][0] - 'A'), Number: number}
	return
}

// Key encodes the label as a single totally-ordered integer.
func (l Label) Key() int {
	return l.Number*GROUP_COUNT + int(l.Group)
}

// String returns the source form of the label.
func (l Label) String() string {
	return fmt.Sprintf("%v%d", l.Group, l.Number)
}
