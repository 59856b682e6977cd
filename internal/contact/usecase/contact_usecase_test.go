package usecase

import (
	"testing"

	"safeguardian-backend/internal/contact/domain"
	"safeguardian-backend/internal/contact/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactUsecase(t *testing.T) (ContactUsecase, repository.ContactRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.EmergencyContact{}))
	repo := repository.NewContactRepository(db)
	return NewContactUsecase(repo), repo
}

func TestAddContactDefaultsAndValidation(t *testing.T) {
	uc, _ := newContactUsecase(t)

	contact, err := uc.AddContact("owner-1", &CreateContactRequest{
		Name:  "Alice",
		Phone: "+15550001111",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, contact.Priority, "unset priority defaults to highest")
	assert.False(t, contact.IsVerified, "new contacts start unverified")
	assert.Nil(t, contact.VerifiedAt)

	for _, priority := range []int{-1, 8, 100} {
		_, err := uc.AddContact("owner-1", &CreateContactRequest{
			Name:     "Bob",
			Phone:    "+15550002222",
			Priority: priority,
		})
		assert.ErrorIs(t, err, ErrInvalidPriority, "priority %d", priority)
	}
}

func TestGetContactsOrdering(t *testing.T) {
	uc, _ := newContactUsecase(t)

	for _, c := range []struct {
		name     string
		priority int
	}{
		{"Zed", 2},
		{"Ann", 2},
		{"Top", 1},
	} {
		_, err := uc.AddContact("owner-1", &CreateContactRequest{Name: c.name, Phone: "+15550000000", Priority: c.priority})
		require.NoError(t, err)
	}

	contacts, err := uc.GetContacts("owner-1")
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Top", contacts[0].Name)
	assert.Equal(t, "Ann", contacts[1].Name)
	assert.Equal(t, "Zed", contacts[2].Name)
}

func TestUpdateContactOwnership(t *testing.T) {
	uc, _ := newContactUsecase(t)

	contact, err := uc.AddContact("owner-1", &CreateContactRequest{Name: "Alice", Phone: "+15550001111"})
	require.NoError(t, err)

	newName := "Alicia"
	updated, err := uc.UpdateContact("owner-1", contact.ID, &UpdateContactRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	// Someone else's contact reads as missing.
	_, err = uc.UpdateContact("owner-2", contact.ID, &UpdateContactRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrContactNotFound)

	badPriority := 9
	_, err = uc.UpdateContact("owner-1", contact.ID, &UpdateContactRequest{Priority: &badPriority})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestVerifyContact(t *testing.T) {
	uc, repo := newContactUsecase(t)

	contact, err := uc.AddContact("owner-1", &CreateContactRequest{Name: "Alice", Phone: "+15550001111"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.VerifyContact("owner-2", contact.ID), ErrContactNotFound)

	require.NoError(t, uc.VerifyContact("owner-1", contact.ID))

	verified, err := repo.FindVerifiedByOwner("owner-1")
	require.NoError(t, err)
	require.Len(t, verified, 1)
	assert.Equal(t, contact.ID, verified[0].ID)
	assert.True(t, verified[0].IsVerified)
	assert.NotNil(t, verified[0].VerifiedAt)
}

func TestDeleteContact(t *testing.T) {
	uc, _ := newContactUsecase(t)

	contact, err := uc.AddContact("owner-1", &CreateContactRequest{Name: "Alice", Phone: "+15550001111"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteContact("owner-2", contact.ID), ErrContactNotFound)
	require.NoError(t, uc.DeleteContact("owner-1", contact.ID))
	assert.ErrorIs(t, uc.DeleteContact("owner-1", contact.ID), ErrContactNotFound)

	contacts, err := uc.GetContacts("owner-1")
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
