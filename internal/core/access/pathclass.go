// Package access holds the routing policy enforced on every page request:
// a prefix-based path classifier and a decision table over
// (identity, role, path class). Both are pure functions so the policy can
// be tested without any HTTP machinery.
package access

import "strings"

// PathClass is the bucket a request path falls into for policy purposes.
type PathClass string

const (
	ClassPublic    PathClass = "public"
	ClassAuth      PathClass = "auth"
	ClassDashboard PathClass = "dashboard"
	ClassSetup     PathClass = "setup"
)

// Well-known paths the policy redirects to.
const (
	SignInPath         = "/auth/signin"
	SetupPath          = "/setup"
	DashboardPath      = "/dashboard"
	JobSeekerDashboard = "/dashboard/job-seeker"
	EmployerDashboard  = "/dashboard/employer"

	jobSeekerSegment = "job-seeker"
	employerSegment  = "employer"
)

// Classify buckets a request path by prefix. Unmatched paths are public:
// the policy never blocks content it does not know about.
func Classify(path string) PathClass {
	switch {
	case path == SetupPath || strings.HasPrefix(path, SetupPath+"/"):
		return ClassSetup
	case path == DashboardPath || strings.HasPrefix(path, DashboardPath+"/"):
		return ClassDashboard
	case path == "/auth" || strings.HasPrefix(path, "/auth/"):
		return ClassAuth
	default:
		return ClassPublic
	}
}

// dashboardSegment extracts the first path element under /dashboard,
// or "" for the bare dashboard root.
func dashboardSegment(path string) string {
	rest := strings.TrimPrefix(path, DashboardPath)
	rest = strings.TrimPrefix(rest, "/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
