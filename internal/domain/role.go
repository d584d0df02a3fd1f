package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Role is an enumerated permission held by a user.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleMarketingTeam      Role = "marketing_team"
	RoleSocialMediaManager Role = "social_media_manager"

	// RoleUser is implied for every authenticated account and never stored.
	RoleUser Role = "user"
)

var ErrUnknownRole = errors.New("unknown role")

// rolePriority orders roles from most to least privileged.
var rolePriority = []Role{RoleAdmin, RoleMarketingTeam, RoleSocialMediaManager}

// claimKeys are the canonical custom-claim spellings written back to clients.
var claimKeys = map[Role]string{
	RoleAdmin:              "admin",
	RoleMarketingTeam:      "Marketing Team",
	RoleSocialMediaManager: "Social Media Manager",
}

// legacyClaimKeys maps every spelling seen in stored claims to its role.
var legacyClaimKeys = map[string]Role{
	"admin":                RoleAdmin,
	"Admin":                RoleAdmin,
	"Marketing Team":       RoleMarketingTeam,
	"marketingTeam":        RoleMarketingTeam,
	"marketing_team":       RoleMarketingTeam,
	"Social Media Manager": RoleSocialMediaManager,
	"socialMediaManager":   RoleSocialMediaManager,
	"social_media_manager": RoleSocialMediaManager,
}

var displayNames = map[Role]string{
	RoleAdmin:              "Admin",
	RoleMarketingTeam:      "Marketing Team",
	RoleSocialMediaManager: "Social Media Manager",
	RoleUser:               "User",
}

// ParseRole resolves a canonical or legacy spelling.
func ParseRole(s string) (Role, error) {
	if r, ok := legacyClaimKeys[strings.TrimSpace(s)]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// ParseRoleClaims converts a set of role flags into roles. Any unknown key is an
// error, so callers writing claims never persist a role that would be ignored.
func ParseRoleClaims(claims map[string]bool) ([]Role, error) {
	roles, unknown := ParseRoleClaimsLenient(claims)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, strings.Join(unknown, ", "))
	}
	return roles, nil
}

// ParseRoleClaimsLenient keeps the known roles and reports the unknown keys.
func ParseRoleClaimsLenient(claims map[string]bool) ([]Role, []string) {
	seen := make(map[Role]bool)
	var unknown []string

	for key, enabled := range claims {
		r, ok := legacyClaimKeys[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if enabled {
			seen[r] = true
		}
	}

	sort.Strings(unknown)
	return orderRoles(seen), unknown
}

// NormalizeRoles drops unknown values and duplicates, keeping priority order.
func NormalizeRoles(values []string) ([]Role, []string) {
	seen := make(map[Role]bool)
	var unknown []string

	for _, v := range values {
		r, err := ParseRole(v)
		if err != nil {
			unknown = append(unknown, v)
			continue
		}
		seen[r] = true
	}

	return orderRoles(seen), unknown
}

func orderRoles(seen map[Role]bool) []Role {
	roles := make([]Role, 0, len(seen))
	for _, r := range rolePriority {
		if seen[r] {
			roles = append(roles, r)
		}
	}
	return roles
}

// RoleClaims renders roles with the canonical claim keys.
func RoleClaims(roles []Role) map[string]bool {
	claims := make(map[string]bool, len(roles))
	for _, r := range roles {
		if key, ok := claimKeys[r]; ok {
			claims[key] = true
		}
	}
	return claims
}

// PrimaryRole picks the most privileged role; accounts without one are plain users.
func PrimaryRole(roles []Role) Role {
	for _, candidate := range rolePriority {
		for _, r := range roles {
			if r == candidate {
				return candidate
			}
		}
	}
	return RoleUser
}

func HasAnyRole(roles []Role, allowed ...Role) bool {
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}

func (r Role) DisplayName() string {
	if name, ok := displayNames[r]; ok {
		return name
	}
	return string(r)
}

func (r Role) String() string {
	return string(r)
}
