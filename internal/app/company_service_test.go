package app

import (
	"context"
	"testing"

	"smarthire/internal/common"
	"smarthire/internal/domain/company"
	"smarthire/internal/domain/user"
)

func companyNamed(name string) company.Company {
	return company.Company{Name: name, Industry: "software"}
}

func testUser(id int64, role user.Role, companyID *int64) *user.User {
	return &user.User{
		ID:       id,
		IsActive: true,
		Profile:  &user.Profile{UserID: id, Role: role, CompanyID: companyID},
	}
}

func seedUser(t *testing.T, users *fakeUserRepo, role user.Role, companyID *int64) *user.User {
	t.Helper()
	created, err := users.Create(context.Background(), "user@example.com", "hash")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	profile, err := users.CreateProfile(context.Background(), created.ID, role, companyID)
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	created.Profile = profile
	return created
}

func TestCompanyCreateLinksFirstRecruiterCompany(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, users, nil)
	recruiter := seedUser(t, users, user.RoleRecruiter, nil)

	created, err := svc.Create(context.Background(), recruiter, companyNamed("Acme"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Both the in-memory actor and the stored profile pick up the link.
	if got := recruiter.CompanyID(); got == nil || *got != created.ID {
		t.Errorf("actor company_id = %v, want %d", got, created.ID)
	}
	stored, err := users.GetByID(context.Background(), recruiter.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got := stored.CompanyID(); got == nil || *got != created.ID {
		t.Errorf("stored company_id = %v, want %d", got, created.ID)
	}
}

func TestCompanyCreateDoesNotRelink(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, users, nil)

	first, err := companies.Create(context.Background(), companyNamed("First"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	recruiter := seedUser(t, users, user.RoleRecruiter, &first.ID)

	if _, err := svc.Create(context.Background(), recruiter, companyNamed("Second")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := recruiter.CompanyID(); got == nil || *got != first.ID {
		t.Errorf("company_id = %v, want unchanged %d", got, first.ID)
	}
}

func TestCompanyCreateRequiresName(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), newFakeUserRepo(), nil)
	admin := testUser(1, user.RoleAdmin, nil)

	if _, err := svc.Create(context.Background(), admin, company.Company{Name: "  "}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCompanyUpdateOwnership(t *testing.T) {
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, newFakeUserRepo(), nil)
	created, err := companies.Create(context.Background(), companyNamed("Acme"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	otherID := created.ID + 100
	outsider := testUser(2, user.RoleRecruiter, &otherID)
	updated := *created
	updated.Name = "Acme v2"
	if _, err := svc.Update(context.Background(), outsider, updated); !common.Is(err, common.CodeForbidden) {
		t.Errorf("outsider update: err = %v, want forbidden", err)
	}

	owner := testUser(3, user.RoleRecruiter, &created.ID)
	got, err := svc.Update(context.Background(), owner, updated)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if got.Name != "Acme v2" {
		t.Errorf("name = %q, want %q", got.Name, "Acme v2")
	}

	if _, err := svc.Update(context.Background(), testUser(4, user.RoleAdmin, nil), updated); err != nil {
		t.Errorf("admin update: %v", err)
	}
}

func TestCompanyDeleteOwnership(t *testing.T) {
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, newFakeUserRepo(), nil)
	created, err := companies.Create(context.Background(), companyNamed("Acme"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Delete(context.Background(), testUser(2, user.RoleRecruiter, nil), created.ID); !common.Is(err, common.CodeForbidden) {
		t.Errorf("unlinked recruiter delete: err = %v, want forbidden", err)
	}
	if err := svc.Delete(context.Background(), testUser(3, user.RoleAdmin, nil), created.ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}
	if err := svc.Delete(context.Background(), testUser(3, user.RoleAdmin, nil), created.ID); !common.Is(err, common.CodeNotFound) {
		t.Errorf("second delete: err = %v, want not found", err)
	}
}
