package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/infra/repository"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/testutil"
)

type domainStub bool

func (d domainStub) IsEmailDomainValid(context.Context, string) bool { return bool(d) }

func TestRegisterPhysician(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, codes *testutil.SeqCodes) (*RegisterPhysician, *testutil.Notifier, []models.Specialty, *repository.PhysicianGormRepository) {
		db := testutil.NewDB(t)
		specs := testutil.SeedSpecialties(t, db, "Pediatria", "Cardiologia", "Neurologia")
		repo := repository.NewPhysicianGormRepository(db)
		n := &testutil.Notifier{}
		return NewRegisterPhysician(repo, codes, n, nil, nil, zerolog.Nop()), n, specs, repo
	}

	t.Run("success emails the login code and hashes the password", func(t *testing.T) {
		uc, n, specs, repo := setup(t, &testutil.SeqCodes{LoginCodes: []string{"12345678"}})

		p, err := uc.Execute(ctx, RegisterInput{
			Name: " Dra. Ana ", Email: "A@X.com", Password: "segredo1",
			SpecialtyIDs: []uint{specs[0].ID, specs[1].ID},
		})
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.LoginCode)

		sent, ok := n.Last()
		require.True(t, ok)
		assert.Equal(t, testutil.SentCode{Kind: "login", Email: "a@x.com", Code: "12345678"}, sent)

		saved, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Dra. Ana", saved.Name)
		assert.NotEqual(t, "segredo1", saved.PasswordHash)
		assert.True(t, physician.CheckPassword(saved.PasswordHash, "segredo1"))
		require.Len(t, saved.Specialties, 2)
		assert.Equal(t, "Cardiologia", saved.Specialties[0].Name)
	})

	t.Run("duplicate email is rejected and nothing is created", func(t *testing.T) {
		uc, n, specs, _ := setup(t, &testutil.SeqCodes{LoginCodes: []string{"12345678", "87654321"}})

		_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "segredo1", SpecialtyIDs: []uint{specs[0].ID}})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, RegisterInput{Name: "B", Email: "a@x.com", Password: "segredo2", SpecialtyIDs: []uint{specs[0].ID}})
		assert.True(t, httperr.IsBusiness(err, "email_already_registered"))
		assert.Len(t, n.Sent, 1)
	})

	t.Run("specialty count is enforced", func(t *testing.T) {
		uc, _, specs, _ := setup(t, &testutil.SeqCodes{LoginCodes: []string{"12345678"}})

		_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "segredo1"})
		assert.True(t, httperr.IsBusiness(err, "specialty_required"))

		_, err = uc.Execute(ctx, RegisterInput{
			Name: "A", Email: "a@x.com", Password: "segredo1",
			SpecialtyIDs: []uint{specs[0].ID, specs[1].ID, specs[2].ID},
		})
		assert.True(t, httperr.IsBusiness(err, "too_many_specialties"))

		_, err = uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "segredo1", SpecialtyIDs: []uint{999}})
		assert.True(t, httperr.IsBusiness(err, "invalid_specialty"))
	})

	t.Run("repeated ids count once", func(t *testing.T) {
		uc, _, specs, _ := setup(t, &testutil.SeqCodes{LoginCodes: []string{"12345678"}})

		p, err := uc.Execute(ctx, RegisterInput{
			Name: "A", Email: "a@x.com", Password: "segredo1",
			SpecialtyIDs: []uint{specs[0].ID, specs[0].ID, specs[1].ID},
		})
		require.NoError(t, err)
		assert.Len(t, p.Specialties, 2)
	})

	t.Run("login code collision is regenerated", func(t *testing.T) {
		uc, _, specs, _ := setup(t, &testutil.SeqCodes{LoginCodes: []string{"11111111", "11111111", "22222222"}})

		first, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "segredo1", SpecialtyIDs: []uint{specs[0].ID}})
		require.NoError(t, err)
		second, err := uc.Execute(ctx, RegisterInput{Name: "B", Email: "b@x.com", Password: "segredo1", SpecialtyIDs: []uint{specs[0].ID}})
		require.NoError(t, err)

		assert.Equal(t, "11111111", first.LoginCode)
		assert.Equal(t, "22222222", second.LoginCode)
	})

	t.Run("email failure does not roll back", func(t *testing.T) {
		uc, n, specs, repo := setup(t, &testutil.SeqCodes{LoginCodes: []string{"12345678"}})
		n.Fail = errors.New("smtp down")

		_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "segredo1", SpecialtyIDs: []uint{specs[0].ID}})
		require.NoError(t, err)

		exists, err := repo.ExistsByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc, _, specs, _ := setup(t, &testutil.SeqCodes{})

		_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "123", SpecialtyIDs: []uint{specs[0].ID}})
		assert.True(t, httperr.IsBusiness(err, "registration_fields_required"))
	})

	t.Run("password over the bcrypt limit", func(t *testing.T) {
		uc, n, specs, repo := setup(t, &testutil.SeqCodes{LoginCodes: []string{"12345678"}})

		long := strings.Repeat("x", physician.MaxPasswordLen+8)
		_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: long, SpecialtyIDs: []uint{specs[0].ID}})
		assert.True(t, httperr.IsBusiness(err, "password_too_long"))

		exists, err := repo.ExistsByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Empty(t, n.Sent)
	})

	t.Run("email domain check", func(t *testing.T) {
		db := testutil.NewDB(t)
		specs := testutil.SeedSpecialties(t, db, "Pediatria")
		repo := repository.NewPhysicianGormRepository(db)
		uc := NewRegisterPhysician(repo, &testutil.SeqCodes{LoginCodes: []string{"12345678"}}, &testutil.Notifier{}, domainStub(false), nil, zerolog.Nop())

		_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "a@nada.invalid", Password: "segredo1", SpecialtyIDs: []uint{specs[0].ID}})
		assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	hash, err := physician.HashPassword("segredo1")
	require.NoError(t, err)
	doc := testutil.CreatePhysician(t, db, "a@x.com", "12345678", hash)

	uc := NewLogin(repository.NewPhysicianGormRepository(db), nil)

	p, err := uc.Execute(ctx, " 12345678 ", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, p.ID)

	_, err = uc.Execute(ctx, "00000000", "segredo1")
	assert.True(t, httperr.IsBusiness(err, "invalid_login_code"))

	_, err = uc.Execute(ctx, "12345678", "errada")
	assert.True(t, httperr.IsBusiness(err, "invalid_password"))
}
