package user

import "errors"

var (
	ErrInvalidRole = errors.New("invalid role")
	ErrInvalidPlan = errors.New("invalid subscription plan")
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Plan is the subscription tier that decides how many listings a user may create.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPlus Plan = "plus"
	PlanPro  Plan = "pro"
)

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPlus, PlanPro:
		return true
	default:
		return false
	}
}

// NewPlan parses s. An empty string is treated as the free plan.
func NewPlan(s string) (Plan, error) {
	if s == "" {
		return PlanFree, nil
	}
	plan := Plan(s)
	if !plan.IsValid() {
		return "", ErrInvalidPlan
	}
	return plan, nil
}
