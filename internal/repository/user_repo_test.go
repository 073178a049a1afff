package repository

import (
	"errors"
	"testing"

	"github.com/iliyamo/travel-route-planner/internal/model"
)

func TestUserRepoIDsNeverReused(t *testing.T) {
	r := NewUserRepo()

	id1 := r.NextID()
	r.Add(model.NewUser(id1, "alice", "a@b.com", "hash"))
	if err := r.Delete(id1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	id2 := r.NextID()
	if id2 <= id1 {
		t.Errorf("NextID after delete = %d; want > %d", id2, id1)
	}
}

func TestUserRepoLookups(t *testing.T) {
	r := NewUserRepo()
	u := model.NewUser(r.NextID(), "alice", "a@b.com", "hash")
	r.Add(u)

	got, err := r.ByID(u.ID)
	if err != nil || got.Name != "alice" {
		t.Fatalf("ByID = (%v, %v)", got, err)
	}
	got, err = r.ByName("alice")
	if err != nil || got.ID != u.ID {
		t.Fatalf("ByName = (%v, %v)", got, err)
	}
	if _, err := r.ByID(999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ByID(999) = %v; want %v", err, ErrUserNotFound)
	}
	if _, err := r.ByName("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ByName(nobody) = %v; want %v", err, ErrUserNotFound)
	}
}

func TestUserRepoByNameFirstMatchWins(t *testing.T) {
	r := NewUserRepo()
	first := model.NewUser(r.NextID(), "alice", "a@b.com", "h1")
	r.Add(first)
	r.Add(model.NewUser(r.NextID(), "alice", "other@b.com", "h2"))

	got, err := r.ByName("alice")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("ByName returned id %d; want first inserted %d", got.ID, first.ID)
	}
}

func TestUserRepoMutations(t *testing.T) {
	r := NewUserRepo()
	u := model.NewUser(r.NextID(), "alice", "a@b.com", "hash")
	r.Add(u)

	if _, err := r.UpdateName(u.ID, "alicia"); err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	got, _ := r.ByID(u.ID)
	if got.Name != "alicia" {
		t.Errorf("name = %q after rename", got.Name)
	}

	if _, err := r.SetAdmin(u.ID); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}
	got, _ = r.ByID(u.ID)
	if got.Role != model.RoleAdmin {
		t.Errorf("role = %q; want %q", got.Role, model.RoleAdmin)
	}

	if _, err := r.UpdateName(999, "x"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateName(999) = %v; want %v", err, ErrUserNotFound)
	}
	if _, err := r.SetAdmin(999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SetAdmin(999) = %v; want %v", err, ErrUserNotFound)
	}
	if err := r.Delete(999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Delete(999) = %v; want %v", err, ErrUserNotFound)
	}
}

func TestUserRepoCreateGuest(t *testing.T) {
	r := NewUserRepo()
	g := r.CreateGuest()

	if g.Role != model.RoleGuest {
		t.Errorf("guest role = %q; want %q", g.Role, model.RoleGuest)
	}
	if g.Name != "" || g.Email != "" || g.PasswordHash != "" {
		t.Errorf("guest profile not empty: %+v", g)
	}
	if _, err := r.ByID(g.ID); err != nil {
		t.Errorf("guest not stored: %v", err)
	}

	// guests consume ids from the same counter as regular users
	u := model.NewUser(r.NextID(), "alice", "a@b.com", "hash")
	if u.ID <= g.ID {
		t.Errorf("id %d after guest id %d; want strictly greater", u.ID, g.ID)
	}
}

func TestTokenRepo(t *testing.T) {
	r := NewTokenRepo()
	r.Bind("tok-1", 7)
	r.Bind("tok-2", 7) // multiple tokens may map to the same user

	if id, ok := r.Resolve("tok-1"); !ok || id != 7 {
		t.Errorf("Resolve(tok-1) = (%d, %v)", id, ok)
	}
	if !r.Exists("tok-2") {
		t.Error("Exists(tok-2) = false")
	}
	if !r.Revoke("tok-1") {
		t.Error("Revoke(tok-1) = false")
	}
	if r.Exists("tok-1") {
		t.Error("tok-1 still bound after revoke")
	}
	if r.Revoke("tok-1") {
		t.Error("second Revoke(tok-1) = true")
	}
	// the other binding is untouched
	if id, ok := r.Resolve("tok-2"); !ok || id != 7 {
		t.Errorf("Resolve(tok-2) after revoking tok-1 = (%d, %v)", id, ok)
	}
}
