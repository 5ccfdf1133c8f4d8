package access

import (
	"testing"

	"github.com/hirewire/portal/internal/core/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want PathClass
	}{
		{"/", ClassPublic},
		{"/about", ClassPublic},
		{"/auth", ClassAuth},
		{"/auth/signin", ClassAuth},
		{"/auth/signup/extra", ClassAuth},
		{"/authors", ClassPublic},
		{"/dashboard", ClassDashboard},
		{"/dashboard/employer/reports", ClassDashboard},
		{"/dashboards", ClassPublic},
		{"/setup", ClassSetup},
		{"/setup/role", ClassSetup},
		{"/setups", ClassPublic},
	}

	for _, tc := range cases {
		if got := Classify(tc.path); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestDecide_Table(t *testing.T) {
	anon := domain.Claims{}
	pending := domain.Claims{IdentityID: "u1"}
	seeker := domain.Claims{IdentityID: "u1", Role: domain.RoleJobSeeker}
	employer := domain.Claims{IdentityID: "u2", Role: domain.RoleEmployer}

	cases := []struct {
		name   string
		claims domain.Claims
		path   string
		allow  bool
		to     string
	}{
		{"anonymous dashboard redirects to signin", anon, "/dashboard/employer", false, SignInPath},
		{"anonymous setup redirects to signin", anon, "/setup", false, SignInPath},
		{"anonymous auth passes", anon, "/auth/signin", true, ""},
		{"anonymous public passes", anon, "/", true, ""},

		{"pending role setup passes", pending, "/setup", true, ""},
		{"pending role dashboard redirects to setup", pending, "/dashboard/job-seeker", false, SetupPath},
		{"pending role auth redirects to setup", pending, "/auth/signin", false, SetupPath},
		{"pending role public passes", pending, "/pricing", true, ""},

		{"seeker auth redirects to own dashboard", seeker, "/auth/signin", false, JobSeekerDashboard},
		{"employer auth redirects to own dashboard", employer, "/auth/signin", false, EmployerDashboard},
		{"role holder setup redirects to own dashboard", employer, "/setup", false, EmployerDashboard},
		{"bare dashboard redirects to role root", seeker, "/dashboard", false, JobSeekerDashboard},
		{"seeker on employer segment redirected", seeker, "/dashboard/employer/anything", false, JobSeekerDashboard},
		{"employer on seeker segment redirected", employer, "/dashboard/job-seeker/applications", false, EmployerDashboard},
		{"employer on own segment passes", employer, "/dashboard/employer/reports", true, ""},
		{"seeker on own segment passes", seeker, "/dashboard/job-seeker", true, ""},
		{"shared dashboard content passes", seeker, "/dashboard/settings", true, ""},
		{"role holder public passes", employer, "/pricing", true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.claims, tc.path)
			if d.Allow != tc.allow {
				t.Fatalf("Decide(%+v, %q).Allow = %v, want %v", tc.claims, tc.path, d.Allow, tc.allow)
			}
			if d.Location != tc.to {
				t.Fatalf("Decide(%+v, %q).Location = %q, want %q", tc.claims, tc.path, d.Location, tc.to)
			}
			if tc.allow && d.Outcome != OutcomeAllow {
				t.Fatalf("allowed decision carries outcome %q", d.Outcome)
			}
			if !tc.allow && d.Outcome == OutcomeAllow {
				t.Fatalf("redirect decision carries outcome allow")
			}
		})
	}
}

// A caller already on the correct page must pass through no matter how
// often the policy re-evaluates the same request.
func TestDecide_Idempotent(t *testing.T) {
	claims := domain.Claims{IdentityID: "u1", Role: domain.RoleJobSeeker}
	for i := 0; i < 10; i++ {
		d := Decide(claims, JobSeekerDashboard)
		if !d.Allow {
			t.Fatalf("iteration %d: expected pass-through, got redirect to %q", i, d.Location)
		}
	}
}

func TestRoleDashboard(t *testing.T) {
	if got := RoleDashboard(domain.RoleEmployer); got != EmployerDashboard {
		t.Fatalf("employer dashboard = %q", got)
	}
	if got := RoleDashboard(domain.RoleJobSeeker); got != JobSeekerDashboard {
		t.Fatalf("job seeker dashboard = %q", got)
	}
}
