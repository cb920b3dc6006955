package services

// RoleRule maps a required skill set to suggested job titles. Rules are
// evaluated in order and the first rule whose requirements are all present
// wins.
type RoleRule struct {
	Requires []string
	Roles    []string
}

// DefaultRoleRules is the built-in suggestion chain.
var DefaultRoleRules = []RoleRule{
	{
		Requires: []string{"python", "sql"},
		Roles:    []string{"Data Analyst", "BI Developer", "ML Engineer"},
	},
	{
		Requires: []string{"excel"},
		Roles:    []string{"Operations Assistant", "Data Entry", "Project Coordinator"},
	},
}

const fallbackRoleSuggestion = "General Role Suggestion: Admin, HR Assistant"

// RoleService suggests job titles from an extracted skill set.
type RoleService struct {
	rules []RoleRule
}

// NewRoleService creates a role suggester. A nil rule list selects
// DefaultRoleRules.
func NewRoleService(rules []RoleRule) *RoleService {
	if rules == nil {
		rules = DefaultRoleRules
	}
	return &RoleService{rules: rules}
}

// Suggest returns the titles of the first matching rule, or the generic
// fallback when no rule matches.
func (s *RoleService) Suggest(skills []string) []string {
	have := make(map[string]bool, len(skills))
	for _, skill := range skills {
		have[skill] = true
	}

	for _, rule := range s.rules {
		matched := true
		for _, required := range rule.Requires {
			if !have[required] {
				matched = false
				break
			}
		}
		if matched {
			return rule.Roles
		}
	}
	return []string{fallbackRoleSuggestion}
}
