package access

import "github.com/hirewire/portal/internal/core/domain"

// Outcome labels a routing decision; exported so callers can record
// metrics without re-deriving the reason from the redirect target.
type Outcome string

const (
	OutcomeAllow             Outcome = "allow"
	OutcomeSignInRedirect    Outcome = "signin_redirect"
	OutcomeSetupRedirect     Outcome = "setup_redirect"
	OutcomeDashboardRedirect Outcome = "dashboard_redirect"
)

// Decision is the result of evaluating the routing policy for one request.
// When Allow is false, Location carries the redirect target.
type Decision struct {
	Allow    bool
	Location string
	Outcome  Outcome
}

func allow() Decision {
	return Decision{Allow: true, Outcome: OutcomeAllow}
}

func redirect(to string, outcome Outcome) Decision {
	return Decision{Location: to, Outcome: outcome}
}

// RoleDashboard returns the dashboard root for a role.
func RoleDashboard(role domain.Role) string {
	if role == domain.RoleEmployer {
		return EmployerDashboard
	}
	return JobSeekerDashboard
}

// Decide evaluates the routing policy for one request. It is total: every
// (identity, role, path) combination maps to exactly one decision, and it
// is the sole guard for dashboard and auth content; handlers may repeat
// checks but never need to.
//
// Anonymous callers may only see public and auth content. Signed-in
// callers without a role are funnelled to role selection before anything
// else. Callers with a role are kept out of auth and setup content and
// inside their own dashboard segment.
func Decide(claims domain.Claims, path string) Decision {
	class := Classify(path)

	if !claims.Authenticated() {
		switch class {
		case ClassDashboard, ClassSetup:
			return redirect(SignInPath, OutcomeSignInRedirect)
		default:
			return allow()
		}
	}

	// Role selection takes precedence over every segment check.
	if !claims.HasRole() {
		switch class {
		case ClassSetup:
			return allow()
		case ClassDashboard, ClassAuth:
			return redirect(SetupPath, OutcomeSetupRedirect)
		default:
			return allow()
		}
	}

	home := RoleDashboard(claims.Role)
	switch class {
	case ClassAuth, ClassSetup:
		return redirect(home, OutcomeDashboardRedirect)
	case ClassDashboard:
		switch seg := dashboardSegment(path); {
		case seg == "":
			// Bare /dashboard has no content of its own.
			return redirect(home, OutcomeDashboardRedirect)
		case seg == employerSegment && claims.Role != domain.RoleEmployer:
			return redirect(home, OutcomeDashboardRedirect)
		case seg == jobSeekerSegment && claims.Role != domain.RoleJobSeeker:
			return redirect(home, OutcomeDashboardRedirect)
		default:
			return allow()
		}
	default:
		return allow()
	}
}
