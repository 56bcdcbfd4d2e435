package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/models"
	"github.com/google/uuid"
)

func TestProfileGet_ReturnsFullAggregate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi", year: 2010, company: "Gojek"}})

	if _, err := svc.ReplaceSkills(ctx, ids[0], []dto.SkillRequest{
		{Name: "Go", Level: models.LevelExpert},
		{Name: "SQL", Level: models.LevelAdvanced},
	}); err != nil {
		t.Fatalf("ReplaceSkills err=%v", err)
	}

	profile, err := svc.Get(ctx, ids[0])
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if profile.FullName != "Ahmad Fauzi" {
		t.Fatalf("FullName=%q", profile.FullName)
	}
	if len(profile.Experiences) != 1 || len(profile.Skills) != 2 {
		t.Fatalf("experiences=%d skills=%d", len(profile.Experiences), len(profile.Skills))
	}
	if profile.Certifications == nil || profile.Educations == nil || profile.SocialLinks == nil {
		t.Fatalf("empty collections must be [], got %+v", profile)
	}
}

func TestProfileGet_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("err=%v, want ErrPersonNotFound", err)
	}
}

func TestUpdateBasic_PartialFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi", year: 2010, location: "Jakarta"}})

	bio := "Backend engineer"
	loc := "Bandung"
	basic, err := svc.UpdateBasic(ctx, ids[0], &dto.BasicProfileRequest{Bio: &bio, Location: &loc})
	if err != nil {
		t.Fatalf("UpdateBasic err=%v", err)
	}
	if basic.Bio != bio || basic.Location != loc {
		t.Fatalf("basic=%+v", basic)
	}
	// Untouched fields survive.
	if basic.FullName != "Ahmad Fauzi" || basic.EnrollmentYear != 2010 {
		t.Fatalf("basic=%+v", basic)
	}
}

func TestUpdateBasic_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))

	bio := "x"
	_, err := svc.UpdateBasic(context.Background(), uuid.New(), &dto.BasicProfileRequest{Bio: &bio})
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("err=%v, want ErrPersonNotFound", err)
	}
}

func TestReplaceCollection_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})

	inserted, err := svc.ReplaceExperiences(ctx, ids[0], []dto.ExperienceRequest{
		{Company: "Gojek", Position: "Engineer", IsCurrent: true},
		{Company: "Telkom", Position: "Intern"},
	})
	if err != nil {
		t.Fatalf("ReplaceExperiences err=%v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("inserted=%d, want 2", len(inserted))
	}

	profile, err := svc.Get(ctx, ids[0])
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if len(profile.Experiences) != 2 {
		t.Fatalf("experiences=%d, want 2", len(profile.Experiences))
	}
}

// Replacing twice with the same payload keeps the content but mints fresh
// identifiers each time.
func TestReplaceCollection_RemintsIdentifiers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})
	payload := []dto.SkillRequest{{Name: "Go", Level: models.LevelExpert}}

	first, err := svc.ReplaceSkills(ctx, ids[0], payload)
	if err != nil {
		t.Fatalf("first replace err=%v", err)
	}
	second, err := svc.ReplaceSkills(ctx, ids[0], payload)
	if err != nil {
		t.Fatalf("second replace err=%v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("first=%d second=%d", len(first), len(second))
	}
	if first[0].Name != second[0].Name || first[0].Level != second[0].Level {
		t.Fatalf("content differs: %+v vs %+v", first[0], second[0])
	}
	if first[0].ID == second[0].ID {
		t.Fatalf("identifier reused across replacements: %s", first[0].ID)
	}

	var count int64
	db.Model(&models.Skill{}).Where("person_id = ?", ids[0]).Count(&count)
	if count != 1 {
		t.Fatalf("rows=%d, want 1", count)
	}
}

func TestReplaceCollection_EmptySetWipes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})

	if _, err := svc.ReplaceSkills(ctx, ids[0], []dto.SkillRequest{
		{Name: "Go"}, {Name: "SQL"}, {Name: "Docker"},
	}); err != nil {
		t.Fatalf("seed skills err=%v", err)
	}

	rows, err := svc.ReplaceSkills(ctx, ids[0], []dto.SkillRequest{})
	if err != nil {
		t.Fatalf("wipe err=%v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows=%d, want 0", len(rows))
	}

	profile, err := svc.Get(ctx, ids[0])
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if len(profile.Skills) != 0 {
		t.Fatalf("skills=%d, want 0", len(profile.Skills))
	}
}

func TestReplaceCollection_OwnerNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))

	_, err := svc.ReplaceSkills(context.Background(), uuid.New(), []dto.SkillRequest{{Name: "Go"}})
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("err=%v, want ErrPersonNotFound", err)
	}
}

// One social link per platform: when the payload repeats a platform the
// last occurrence wins.
func TestReplaceSocialLinks_OnePerPlatform(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})

	rows, err := svc.ReplaceSocialLinks(ctx, ids[0], []dto.SocialLinkRequest{
		{Platform: "github", URL: "https://github.com/old"},
		{Platform: "linkedin", URL: "https://linkedin.com/in/ahmad"},
		{Platform: "github", URL: "https://github.com/ahmadf"},
	})
	if err != nil {
		t.Fatalf("ReplaceSocialLinks err=%v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.Platform == "github" && r.URL != "https://github.com/ahmadf" {
			t.Fatalf("github url=%q, want last occurrence", r.URL)
		}
	}
}

func TestReplaceComplete_SubsetOfSections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi", year: 2010}})

	if _, err := svc.ReplaceSkills(ctx, ids[0], []dto.SkillRequest{{Name: "Go"}}); err != nil {
		t.Fatalf("seed skills err=%v", err)
	}

	bio := "Updated bio"
	exps := []dto.ExperienceRequest{{Company: "Gojek", Position: "Engineer", IsCurrent: true}}
	profile, err := svc.ReplaceComplete(ctx, ids[0], &dto.CompleteProfileRequest{
		Basic:       &dto.BasicProfileRequest{Bio: &bio},
		Experiences: &exps,
	})
	if err != nil {
		t.Fatalf("ReplaceComplete err=%v", err)
	}

	if profile.Bio != bio {
		t.Fatalf("bio=%q", profile.Bio)
	}
	if len(profile.Experiences) != 1 || profile.Experiences[0].Company != "Gojek" {
		t.Fatalf("experiences=%+v", profile.Experiences)
	}
	// Skills were not in the request and must be untouched.
	if len(profile.Skills) != 1 || profile.Skills[0].Name != "Go" {
		t.Fatalf("skills=%+v", profile.Skills)
	}
}

// replaceComplete({skills: []}) on a person with existing skills deletes
// them all.
func TestReplaceComplete_EmptySkillsWipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})
	if _, err := svc.ReplaceSkills(ctx, ids[0], []dto.SkillRequest{
		{Name: "Go"}, {Name: "SQL"}, {Name: "Docker"},
	}); err != nil {
		t.Fatalf("seed skills err=%v", err)
	}

	empty := []dto.SkillRequest{}
	profile, err := svc.ReplaceComplete(ctx, ids[0], &dto.CompleteProfileRequest{Skills: &empty})
	if err != nil {
		t.Fatalf("ReplaceComplete err=%v", err)
	}
	if len(profile.Skills) != 0 {
		t.Fatalf("skills=%d, want 0", len(profile.Skills))
	}
}

func TestReplaceComplete_AllSections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})

	name := "Ahmad F. Fauzi"
	exps := []dto.ExperienceRequest{{Company: "Gojek", Position: "Engineer", IsCurrent: true}}
	skills := []dto.SkillRequest{{Name: "Go", Level: models.LevelExpert}}
	certs := []dto.CertificationRequest{{Name: "CKA", Issuer: "CNCF"}}
	edus := []dto.EducationRequest{{Institution: "ITB", Degree: "BSc"}}
	socials := []dto.SocialLinkRequest{{Platform: "github", URL: "https://github.com/ahmadf"}}

	profile, err := svc.ReplaceComplete(ctx, ids[0], &dto.CompleteProfileRequest{
		Basic:          &dto.BasicProfileRequest{FullName: &name},
		Experiences:    &exps,
		Skills:         &skills,
		Certifications: &certs,
		Educations:     &edus,
		SocialLinks:    &socials,
	})
	if err != nil {
		t.Fatalf("ReplaceComplete err=%v", err)
	}

	if profile.FullName != name {
		t.Fatalf("FullName=%q", profile.FullName)
	}
	if len(profile.Experiences) != 1 || len(profile.Skills) != 1 ||
		len(profile.Certifications) != 1 || len(profile.Educations) != 1 ||
		len(profile.SocialLinks) != 1 {
		t.Fatalf("profile=%+v", profile)
	}
}

// A failing section surfaces its error but must not interrupt sibling
// sections: once issued, every section write runs to completion, so a
// healthy section lands in full even when another one fails.
func TestReplaceComplete_FailingSectionDoesNotCancelSiblings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))
	ctx := context.Background()

	ids := seedPeople(t, db, []seedPerson{{name: "Ahmad Fauzi"}})

	// Break the skills collection only.
	if err := db.Exec("DROP TABLE skills").Error; err != nil {
		t.Fatalf("drop skills table err=%v", err)
	}

	skills := []dto.SkillRequest{{Name: "Go"}}
	exps := []dto.ExperienceRequest{
		{Company: "Gojek", Position: "Engineer", IsCurrent: true},
		{Company: "Telkom", Position: "Intern"},
	}
	_, err := svc.ReplaceComplete(ctx, ids[0], &dto.CompleteProfileRequest{
		Skills:      &skills,
		Experiences: &exps,
	})
	if err == nil {
		t.Fatalf("expected error from broken skills section")
	}
	if errors.Is(err, context.Canceled) {
		t.Fatalf("sibling write was cancelled: %v", err)
	}

	var count int64
	if err := db.Model(&models.Experience{}).Where("person_id = ?", ids[0]).Count(&count).Error; err != nil {
		t.Fatalf("count experiences err=%v", err)
	}
	if count != 2 {
		t.Fatalf("experiences=%d, want 2 (healthy section must land in full)", count)
	}
}

func TestReplaceComplete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, testCache(t))

	empty := []dto.SkillRequest{}
	_, err := svc.ReplaceComplete(context.Background(), uuid.New(), &dto.CompleteProfileRequest{Skills: &empty})
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("err=%v, want ErrPersonNotFound", err)
	}
}
