package usecase

import (
	"testing"

	contactdomain "safeguardian-backend/internal/contact/domain"
	contactrepo "safeguardian-backend/internal/contact/repository"
	contactusecase "safeguardian-backend/internal/contact/usecase"
	"safeguardian-backend/internal/document/domain"
	"safeguardian-backend/internal/document/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type documentFixture struct {
	db        *gorm.DB
	uc        DocumentUsecase
	docRepo   repository.DocumentRepository
	contactUc contactusecase.ContactUsecase
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&contactdomain.EmergencyContact{},
		&domain.Document{},
		&domain.DocumentShare{},
	))

	contactRepository := contactrepo.NewContactRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	return &documentFixture{
		db:        db,
		uc:        NewDocumentUsecase(docRepo, contactRepository),
		docRepo:   docRepo,
		contactUc: contactusecase.NewContactUsecase(contactRepository),
	}
}

func (f *documentFixture) addDocument(t *testing.T, owner, title string) *domain.Document {
	t.Helper()
	doc, err := f.uc.AddDocument(owner, &CreateDocumentRequest{
		Title:    title,
		FilePath: "/storage/" + title + ".pdf",
		FileSize: 1024,
	})
	require.NoError(t, err)
	return doc
}

func (f *documentFixture) addContact(t *testing.T, owner, name string) *contactdomain.EmergencyContact {
	t.Helper()
	contact, err := f.contactUc.AddContact(owner, &contactusecase.CreateContactRequest{
		Name:  name,
		Phone: "+15550000000",
	})
	require.NoError(t, err)
	return contact
}

func TestDocumentCRUD(t *testing.T) {
	f := newDocumentFixture(t)

	doc := f.addDocument(t, "owner-1", "passport")

	docs, err := f.uc.GetDocuments("owner-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)

	newTitle := "passport 2026"
	updated, err := f.uc.UpdateDocument("owner-1", doc.ID, &UpdateDocumentRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	require.NoError(t, f.uc.DeleteDocument("owner-1", doc.ID))
	assert.ErrorIs(t, f.uc.DeleteDocument("owner-1", doc.ID), ErrDocumentNotFound)
}

func TestDocumentOwnershipIsNotLeaked(t *testing.T) {
	f := newDocumentFixture(t)

	doc := f.addDocument(t, "owner-1", "insurance")

	_, err := f.uc.GetDownload("owner-2", doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	title := "stolen"
	_, err = f.uc.UpdateDocument("owner-2", doc.ID, &UpdateDocumentRequest{Title: &title})
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	assert.ErrorIs(t, f.uc.DeleteDocument("owner-2", doc.ID), ErrDocumentNotFound)

	// Still intact for the real owner.
	got, err := f.uc.GetDownload("owner-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "insurance", got.Title)
}

func TestShareDocument(t *testing.T) {
	f := newDocumentFixture(t)

	doc := f.addDocument(t, "owner-1", "medical")
	c1 := f.addContact(t, "owner-1", "Alice")
	c2 := f.addContact(t, "owner-1", "Bob")

	require.NoError(t, f.uc.ShareDocument("owner-1", doc.ID, []string{c1.ID, c2.ID}))

	shares, err := f.docRepo.SharesByDocument(doc.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 2)
}

func TestShareDocumentValidation(t *testing.T) {
	f := newDocumentFixture(t)

	doc := f.addDocument(t, "owner-1", "medical")
	own := f.addContact(t, "owner-1", "Alice")
	foreign := f.addContact(t, "owner-2", "Mallory")

	assert.ErrorIs(t, f.uc.ShareDocument("owner-1", doc.ID, nil), ErrNoShareTargets)

	assert.ErrorIs(t, f.uc.ShareDocument("owner-2", doc.ID, []string{foreign.ID}), ErrDocumentNotFound)

	// One foreign contact poisons the whole batch; nothing is written.
	err := f.uc.ShareDocument("owner-1", doc.ID, []string{own.ID, foreign.ID})
	assert.ErrorIs(t, err, ErrContactNotFound)

	shares, err := f.docRepo.SharesByDocument(doc.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
}
