package service

import (
	"testing"

	"bukubersama-backend/app/model"
	"bukubersama-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo adalah implementasi in-memory UserRepository untuk tes service.
type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByNIM(nim string) (*model.User, error) {
	for _, u := range r.users {
		if u.NIM == nim {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == "" {
		user.ID = "generated-" + user.NIM
	}
	if _, ok := r.users[user.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Save(id string, user *model.User) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.ID = id
	user.PasswordHash = r.users[id].PasswordHash
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthServiceRegister(t *testing.T) {
	existing := &model.User{
		ID:       "1",
		Name:     "Budi Santoso",
		Username: "budi",
		Email:    "budi@upi.edu",
		NIM:      "2100001",
	}

	tests := []struct {
		name    string
		user    model.User
		wantErr error
	}{
		{
			name: "registrasi baru sukses",
			user: model.User{Name: "Sari", Username: "sari", Email: "sari@itb.ac.id", NIM: "2100002"},
		},
		{
			name:    "email sudah terdaftar",
			user:    model.User{Name: "X", Username: "x", Email: "budi@upi.edu", NIM: "2100003"},
			wantErr: utils.ErrConflict,
		},
		{
			name:    "nim sudah terdaftar",
			user:    model.User{Name: "X", Username: "x", Email: "x@ugm.ac.id", NIM: "2100001"},
			wantErr: utils.ErrConflict,
		},
		{
			name:    "username sudah terpakai",
			user:    model.User{Name: "X", Username: "budi", Email: "x@ugm.ac.id", NIM: "2100004"},
			wantErr: utils.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(existing)
			svc := NewAuthService(repo)

			err := svc.Register(&tt.user, "rahasia123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			saved, err := repo.FindByEmail(tt.user.Email)
			require.NoError(t, err)
			// password tersimpan sebagai hash, bukan plaintext
			assert.NotEqual(t, "rahasia123", saved.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("rahasia123")))
		})
	}
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newFakeUserRepo(&model.User{
		ID:           "1",
		Email:        "budi@upi.edu",
		NIM:          "2100001",
		Role:         "mahasiswa",
		PasswordHash: hashPassword(t, "123123"),
	})
	svc := NewAuthService(repo)

	t.Run("login sukses", func(t *testing.T) {
		user, err := svc.Login("budi@upi.edu", "123123")
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
	})

	t.Run("password salah", func(t *testing.T) {
		_, err := svc.Login("budi@upi.edu", "salah")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("email tak dikenal menghasilkan error yang sama", func(t *testing.T) {
		_, err := svc.Login("tidakada@upi.edu", "123123")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
