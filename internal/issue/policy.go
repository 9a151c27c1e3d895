package issue

import "hostelhub/backend/internal/models"

// actorClass is the resolved relationship between an actor and a specific
// issue. It is derived per request: a WARDEN only counts as classWarden after
// passing the delegation check, a STAFF user only as classStaff when they are
// the assignee, and a student only as classRaiser on their own issue.
type actorClass int

const (
	classNone actorClass = iota
	classAdmin
	classWarden
	classStaff
	classRaiser
)

// rolePolicy bundles the per-class transition rule with the set of issue
// fields an edit from that class may actually change. Submitted fields
// outside the set are dropped silently, not rejected.
type rolePolicy struct {
	canTransition func(current, requested models.IssueStatus) bool
	fields        map[string]bool
}

// editPolicies is the full permission matrix. The global monotonicity rule
// (no status may ever move backwards) is checked before any of these.
var editPolicies = map[actorClass]rolePolicy{
	classAdmin: {
		canTransition: func(current, requested models.IssueStatus) bool {
			return true
		},
		fields: map[string]bool{
			"title":          true,
			"description":    true,
			"priority":       true,
			"is_public":      true,
			"remarks":        true,
			"group_tag":      true,
			"assigned_to_id": true,
			"images":         true,
		},
	},
	classWarden: {
		// A warden may move an issue forward but can never close it.
		canTransition: func(current, requested models.IssueStatus) bool {
			return requested != models.StatusClosed || requested == current
		},
		fields: map[string]bool{
			"group_tag":      true,
			"assigned_to_id": true,
		},
	},
	classStaff: {
		canTransition: func(current, requested models.IssueStatus) bool {
			return requested == models.StatusResolved || requested == current
		},
		fields: map[string]bool{},
	},
	classRaiser: {
		canTransition: func(current, requested models.IssueStatus) bool {
			return requested == models.StatusClosed || requested == current
		},
		fields: map[string]bool{
			"description": true,
			"is_public":   true,
			"remarks":     true,
			"images":      true,
		},
	},
}
