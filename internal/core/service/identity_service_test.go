package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubDedup struct {
	seenResult bool
	seenErr    error
	markErr    error
	marked     []string
}

func (d *stubDedup) Seen(_ context.Context, _ string) (bool, error) {
	return d.seenResult, d.seenErr
}

func (d *stubDedup) Mark(_ context.Context, deliveryID string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, deliveryID)
	return nil
}

func newIdentitySvc(users *stubUserRepo, dedup *stubDedup) ports.IdentityService {
	return NewIdentityService(users, dedup, zerolog.Nop())
}

func createdEvent(deliveryID, externalID string) ports.WebhookEventInput {
	return ports.WebhookEventInput{
		DeliveryID: deliveryID,
		Type:       ports.EventUserCreated,
		User: ports.WebhookUserData{
			ExternalID: externalID,
			Email:      "maria@example.com",
			FirstName:  "Maria",
			LastName:   "Lopez",
			AvatarURL:  "https://img.example.com/maria.png",
		},
	}
}

// ---------------------------------------------------------------------------
// ProcessEvent
// ---------------------------------------------------------------------------

func TestIdentityService_ProcessEvent_UserCreated(t *testing.T) {
	users := newStubUserRepo()
	dedup := &stubDedup{}
	svc := newIdentitySvc(users, dedup)

	err := svc.ProcessEvent(context.Background(), createdEvent("msg_1", "ext_abc"))

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	profile, err := users.FindByExternalID(context.Background(), "ext_abc")
	if err != nil {
		t.Fatalf("expected profile stored, got: %v", err)
	}
	if profile.Role != domain.RoleClient {
		t.Errorf("expected default client role, got %q", profile.Role)
	}
	if profile.FullName != "Maria Lopez" {
		t.Errorf("expected full name composed, got %q", profile.FullName)
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "msg_1" {
		t.Errorf("expected delivery marked, got: %v", dedup.marked)
	}
}

func TestIdentityService_ProcessEvent_NameTrimmed(t *testing.T) {
	users := newStubUserRepo()
	svc := newIdentitySvc(users, &stubDedup{})

	event := createdEvent("msg_1", "ext_abc")
	event.User.LastName = ""
	if err := svc.ProcessEvent(context.Background(), event); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	profile, _ := users.FindByExternalID(context.Background(), "ext_abc")
	if profile.FullName != "Maria" {
		t.Errorf("expected trimmed name, got %q", profile.FullName)
	}
}

func TestIdentityService_ProcessEvent_RedeliverySkipped(t *testing.T) {
	users := newStubUserRepo()
	dedup := &stubDedup{seenResult: true}
	svc := newIdentitySvc(users, dedup)

	err := svc.ProcessEvent(context.Background(), createdEvent("msg_1", "ext_abc"))

	if err != nil {
		t.Fatalf("expected no error for redelivery, got: %v", err)
	}
	if len(users.createdInputs) != 0 {
		t.Error("expected no profile created for redelivered event")
	}
}

func TestIdentityService_ProcessEvent_DedupCheckError_ProcessesAnyway(t *testing.T) {
	users := newStubUserRepo()
	dedup := &stubDedup{seenErr: errors.New("redis timeout")}
	svc := newIdentitySvc(users, dedup)

	err := svc.ProcessEvent(context.Background(), createdEvent("msg_1", "ext_abc"))

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(users.createdInputs) != 1 {
		t.Error("expected profile created despite dedup check failure")
	}
}

func TestIdentityService_ProcessEvent_UserUpdated(t *testing.T) {
	users := newStubUserRepo()
	users.byExternalID["ext_abc"] = &domain.UserProfile{ID: "user_1", ExternalID: "ext_abc", Role: domain.RoleTranslator}
	svc := newIdentitySvc(users, &stubDedup{})

	event := createdEvent("msg_2", "ext_abc")
	event.Type = ports.EventUserUpdated
	if err := svc.ProcessEvent(context.Background(), event); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	patch, ok := users.patched["ext_abc"]
	if !ok {
		t.Fatal("expected profile patched")
	}
	if patch.FullName == nil || *patch.FullName != "Maria Lopez" {
		t.Errorf("unexpected patch name: %v", patch.FullName)
	}
	if patch.Email == nil || *patch.Email != "maria@example.com" {
		t.Errorf("unexpected patch email: %v", patch.Email)
	}
}

func TestIdentityService_ProcessEvent_UserDeleted(t *testing.T) {
	users := newStubUserRepo()
	users.byExternalID["ext_abc"] = &domain.UserProfile{ID: "user_1", ExternalID: "ext_abc"}
	svc := newIdentitySvc(users, &stubDedup{})

	event := ports.WebhookEventInput{
		DeliveryID: "msg_3",
		Type:       ports.EventUserDeleted,
		User:       ports.WebhookUserData{ExternalID: "ext_abc"},
	}
	if err := svc.ProcessEvent(context.Background(), event); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(users.deleted) != 1 || users.deleted[0] != "ext_abc" {
		t.Errorf("expected profile deleted, got: %v", users.deleted)
	}
}

func TestIdentityService_ProcessEvent_UnknownTypeIgnored(t *testing.T) {
	users := newStubUserRepo()
	svc := newIdentitySvc(users, &stubDedup{})

	err := svc.ProcessEvent(context.Background(), ports.WebhookEventInput{
		DeliveryID: "msg_4",
		Type:       "session.created",
	})

	if err != nil {
		t.Fatalf("expected unknown type to be ignored, got: %v", err)
	}
	if len(users.createdInputs) != 0 {
		t.Error("expected no write for unknown event type")
	}
}

func TestIdentityService_ProcessEvent_DuplicateCreateSurfaces(t *testing.T) {
	users := newStubUserRepo()
	users.byExternalID["ext_abc"] = &domain.UserProfile{ID: "user_1", ExternalID: "ext_abc"}
	svc := newIdentitySvc(users, &stubDedup{})

	err := svc.ProcessEvent(context.Background(), createdEvent("msg_5", "ext_abc"))

	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got: %v", err)
	}
}

func TestIdentityService_ProcessEvent_MarkFailureIsNonFatal(t *testing.T) {
	users := newStubUserRepo()
	dedup := &stubDedup{markErr: errors.New("redis timeout")}
	svc := newIdentitySvc(users, dedup)

	if err := svc.ProcessEvent(context.Background(), createdEvent("msg_6", "ext_abc")); err != nil {
		t.Fatalf("expected mark failure to be non-fatal, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Resolve / ListAssignable
// ---------------------------------------------------------------------------

func TestIdentityService_Resolve(t *testing.T) {
	users := newStubUserRepo()
	users.byExternalID["ext_abc"] = &domain.UserProfile{ID: "user_1", ExternalID: "ext_abc", Role: domain.RoleEditor}
	svc := newIdentitySvc(users, &stubDedup{})

	profile, err := svc.Resolve(context.Background(), "ext_abc")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if profile.ID != "user_1" {
		t.Errorf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for empty subject, got: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "ext_missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIdentityService_ListAssignable(t *testing.T) {
	users := newStubUserRepo()
	users.assignable = []*domain.UserProfile{
		{ID: "user_1", FullName: "Bob Reyes", Role: domain.RoleTranslator},
		{ID: "user_2", FullName: "Dana Kim", Role: domain.RoleEditor},
	}
	svc := newIdentitySvc(users, &stubDedup{})

	out, err := svc.ListAssignable(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}
	if out[0].FullName != "Bob Reyes" || out[0].Role != "translator" {
		t.Errorf("unexpected first entry: %+v", out[0])
	}
}
