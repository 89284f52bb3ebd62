package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// The role model is fixed: two roles, resource/action policies below. Kept in
// casbin so route gates stay declarative and the policy is testable on its own.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{"ADMIN", "holidays", "read"},
	{"ADMIN", "holidays", "write"},
	{"STAFF", "holidays", "read"},
	{"ADMIN", "staff", "read"},
	{"STAFF", "staff", "read"},
	{"ADMIN", "attendance", "read"},
	{"STAFF", "attendance", "read"},
	{"STAFF", "attendance", "write"},
	{"STAFF", "tickets", "read"},
	{"STAFF", "tickets", "write"},
	{"ADMIN", "tickets", "read"},
	{"ADMIN", "tickets", "write"},
	{"ADMIN", "attendance", "write"},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
