package engine

import "strings"

// Role classifies a scene object for gameplay. It is assigned once when the
// object is created so per-frame code never inspects names.
type Role int

const (
	RoleNone Role = iota
	RoleBall
	RoleGoal
	RoleWall
)

const (
	BallName   = "Ball"
	GoalName   = "Present"
	WallPrefix = "Wall."
)

// RoleForName maps the scene naming convention onto a Role.
func RoleForName(name string) Role {
	switch {
	case name == BallName:
		return RoleBall
	case name == GoalName:
		return RoleGoal
	case strings.HasPrefix(name, WallPrefix):
		return RoleWall
	}
	return RoleNone
}

func (r Role) String() string {
	switch r {
	case RoleBall:
		return "ball"
	case RoleGoal:
		return "goal"
	case RoleWall:
		return "wall"
	}
	return "none"
}
