package service

import (
	"context"
	"sort"
	"strings"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// fakeHasher is a deterministic stand-in for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (fakeHasher) Matches(plaintext, hash string) bool { return hash == "hashed:"+plaintext }

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	clone.Destinations = append([]domain.Destination(nil), u.Destinations...)
	return &clone
}

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	// dests, when set, lets Delete mimic the cascade to owned destinations.
	dests *stubDestRepo
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	copy := cloneUser(u)
	if copy.ID == 0 {
		copy.ID = r.nextID
	}
	if copy.ID >= r.nextID {
		r.nextID = copy.ID + 1
	}
	r.users[copy.ID] = copy
	return cloneUser(copy)
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundByID("User", id)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NewNotFoundByName("User", username)
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *cloneUser(r.users[id]))
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return r.add(user), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.NewNotFoundByID("User", user.ID)
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.NewNotFoundByID("User", user.ID)
	}
	delete(r.users, user.ID)
	if r.dests != nil {
		r.dests.deleteByOwner(user.ID)
	}
	return nil
}

type stubRoleRepo struct {
	roles  map[int64]*domain.Role
	nextID int64
}

func newStubRoleRepo(names ...string) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[int64]*domain.Role), nextID: 1}
	for _, name := range names {
		_, _ = r.Create(context.Background(), &domain.Role{Name: name})
	}
	return r
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.NewNotFoundByID("Role", id)
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if strings.EqualFold(role.Name, name) {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.NewNotFoundByName("Role", name)
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	ids := make([]int64, 0, len(r.roles))
	for id := range r.roles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.Role, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.roles[id])
	}
	return out, nil
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	clone := *role
	clone.ID = r.nextID
	r.nextID++
	r.roles[clone.ID] = &clone
	out := clone
	return &out, nil
}

type stubDestRepo struct {
	dests  map[int64]*domain.Destination
	nextID int64
}

func newStubDestRepo() *stubDestRepo {
	return &stubDestRepo{dests: make(map[int64]*domain.Destination), nextID: 1}
}

func (r *stubDestRepo) add(d *domain.Destination) *domain.Destination {
	clone := *d
	if clone.ID == 0 {
		clone.ID = r.nextID
	}
	if clone.ID >= r.nextID {
		r.nextID = clone.ID + 1
	}
	r.dests[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubDestRepo) deleteByOwner(ownerID int64) {
	for id, d := range r.dests {
		if d.OwnerID == ownerID {
			delete(r.dests, id)
		}
	}
}

func (r *stubDestRepo) FindByID(_ context.Context, id int64) (*domain.Destination, error) {
	d, ok := r.dests[id]
	if !ok {
		return nil, domain.NewNotFoundByID("Destination", id)
	}
	clone := *d
	return &clone, nil
}

func (r *stubDestRepo) FindAll(_ context.Context) ([]domain.Destination, error) {
	ids := make([]int64, 0, len(r.dests))
	for id := range r.dests {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.dests[id])
	}
	return out, nil
}

func (r *stubDestRepo) FindAllByOwner(_ context.Context, ownerID int64) ([]domain.Destination, error) {
	all, _ := r.FindAll(context.Background())
	out := make([]domain.Destination, 0)
	for _, d := range all {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDestRepo) Create(_ context.Context, dest *domain.Destination) (*domain.Destination, error) {
	return r.add(dest), nil
}

func (r *stubDestRepo) Update(_ context.Context, dest *domain.Destination) (*domain.Destination, error) {
	if _, ok := r.dests[dest.ID]; !ok {
		return nil, domain.NewNotFoundByID("Destination", dest.ID)
	}
	clone := *dest
	r.dests[dest.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDestRepo) Delete(_ context.Context, dest *domain.Destination) error {
	if _, ok := r.dests[dest.ID]; !ok {
		return domain.NewNotFoundByID("Destination", dest.ID)
	}
	delete(r.dests, dest.ID)
	return nil
}
