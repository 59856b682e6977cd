package usecase

import (
	"context"
	"sync"
	"testing"

	"safeguardian-backend/internal/alert/domain"
	"safeguardian-backend/internal/alert/repository"
	authdomain "safeguardian-backend/internal/auth/domain"
	authrepo "safeguardian-backend/internal/auth/repository"
	contactdomain "safeguardian-backend/internal/contact/domain"
	contactrepo "safeguardian-backend/internal/contact/repository"
	contactusecase "safeguardian-backend/internal/contact/usecase"
	"safeguardian-backend/pkg/fcm"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type recordingPush struct {
	mu    sync.Mutex
	sent  []fcm.Notification
	calls [][]string
}

func (p *recordingPush) SendToDevices(_ context.Context, tokens []string, n fcm.Notification) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, n)
	p.calls = append(p.calls, tokens)
	return nil, nil
}

type alertFixture struct {
	db          *gorm.DB
	uc          AlertUsecase
	contactRepo contactrepo.ContactRepository
	push        *recordingPush
}

func newAlertFixture(t *testing.T) *alertFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authdomain.User{},
		&authdomain.DeviceToken{},
		&contactdomain.EmergencyContact{},
		&domain.Alert{},
		&domain.AlertNotification{},
	))

	contactRepository := contactrepo.NewContactRepository(db)
	push := &recordingPush{}
	uc := NewAlertUsecase(
		repository.NewAlertRepository(db),
		contactRepository,
		authrepo.NewDeviceTokenRepository(db),
		zaptest.NewLogger(t),
	)
	uc.SetPushService(push)

	return &alertFixture{db: db, uc: uc, contactRepo: contactRepository, push: push}
}

// addContact creates a contact for the owner, verified unless stated.
func (f *alertFixture) addContact(t *testing.T, owner, name string, priority int, verified bool) *contactdomain.EmergencyContact {
	t.Helper()
	contactUc := contactusecase.NewContactUsecase(f.contactRepo)
	contact, err := contactUc.AddContact(owner, &contactusecase.CreateContactRequest{
		Name:     name,
		Phone:    "+15550000000",
		Priority: priority,
	})
	require.NoError(t, err)
	if verified {
		require.NoError(t, contactUc.VerifyContact(owner, contact.ID))
	}
	return contact
}

func ptr(v float64) *float64 { return &v }

func TestCreateAlertFansOutToVerifiedContacts(t *testing.T) {
	f := newAlertFixture(t)

	// Three verified contacts out of priority order, plus one unverified
	// that must be skipped.
	c3 := f.addContact(t, "owner-1", "Charlie", 3, true)
	c1 := f.addContact(t, "owner-1", "Alpha", 1, true)
	c2 := f.addContact(t, "owner-1", "Bravo", 2, true)
	f.addContact(t, "owner-1", "Unverified", 1, false)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(48.8566),
		Longitude: ptr(2.3522),
		Message:   "need help near the river",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.NotifiedCount)
	require.Len(t, res.Notifications, 3)

	// Fan-out follows ascending contact priority.
	assert.Equal(t, c1.ID, res.Notifications[0].ContactID)
	assert.Equal(t, c2.ID, res.Notifications[1].ContactID)
	assert.Equal(t, c3.ID, res.Notifications[2].ContactID)
	for _, n := range res.Notifications {
		assert.Equal(t, domain.NotificationPending, n.Status)
	}

	alert, err := repository.NewAlertRepository(f.db).FindByID(res.AlertID)
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, domain.AlertPending, alert.Status)
	assert.Equal(t, 48.8566, alert.Latitude)
	assert.Equal(t, 2.3522, alert.Longitude)
}

func TestCreateAlertWithNoVerifiedContacts(t *testing.T) {
	f := newAlertFixture(t)
	f.addContact(t, "owner-1", "Unverified", 1, false)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(10.0),
		Longitude: ptr(20.0),
	})
	require.NoError(t, err)
	assert.Zero(t, res.NotifiedCount)
	assert.Empty(t, res.Notifications)
}

func TestCreateAlertRejectsBadInput(t *testing.T) {
	f := newAlertFixture(t)

	cases := []struct {
		name string
		req  *CreateAlertRequest
		want error
	}{
		{"latitude too high", &CreateAlertRequest{Latitude: ptr(91), Longitude: ptr(0)}, ErrInvalidCoordinates},
		{"latitude too low", &CreateAlertRequest{Latitude: ptr(-91), Longitude: ptr(0)}, ErrInvalidCoordinates},
		{"longitude too high", &CreateAlertRequest{Latitude: ptr(0), Longitude: ptr(181)}, ErrInvalidCoordinates},
		{"longitude too low", &CreateAlertRequest{Latitude: ptr(0), Longitude: ptr(-181)}, ErrInvalidCoordinates},
		{"missing latitude", &CreateAlertRequest{Longitude: ptr(0)}, ErrInvalidCoordinates},
		{"message too long", &CreateAlertRequest{Latitude: ptr(0), Longitude: ptr(0), Message: string(make([]byte, 5001))}, ErrMessageTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateAlert(context.Background(), "owner-1", tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// No partial writes on rejected input.
	var count int64
	require.NoError(t, f.db.Model(&domain.Alert{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAlertRollsBackOnNotificationFailure(t *testing.T) {
	f := newAlertFixture(t)
	f.addContact(t, "owner-1", "Alpha", 1, true)

	// With the notification table gone, the alert insert succeeds inside
	// the transaction and the first notification insert fails.
	require.NoError(t, f.db.Migrator().DropTable(&domain.AlertNotification{}))

	_, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.Error(t, err)

	// The whole batch rolled back: no alert without its snapshot.
	var count int64
	require.NoError(t, f.db.Model(&domain.Alert{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAlertZeroCoordinatesAreValid(t *testing.T) {
	f := newAlertFixture(t)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(0),
		Longitude: ptr(0),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AlertID)
}

func TestGetAlertsAggregatesCounts(t *testing.T) {
	f := newAlertFixture(t)

	c1 := f.addContact(t, "owner-1", "Alpha", 1, true)
	f.addContact(t, "owner-1", "Bravo", 2, true)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.RespondToAlert(context.Background(), c1.ID, res.AlertID, "on my way"))

	summaries, err := f.uc.GetAlerts("owner-1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, res.AlertID, summaries[0].ID)
	assert.Equal(t, int64(2), summaries[0].NotifiedCount)
	assert.Equal(t, int64(1), summaries[0].RespondedCount)

	// Another user sees nothing.
	summaries, err = f.uc.GetAlerts("owner-2")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGetNotificationsIsOwnerScoped(t *testing.T) {
	f := newAlertFixture(t)
	f.addContact(t, "owner-1", "Alpha", 1, true)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)

	notifications, err := f.uc.GetNotifications("owner-1", res.AlertID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)

	_, err = f.uc.GetNotifications("owner-2", res.AlertID)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestUpdateAlertStatus(t *testing.T) {
	f := newAlertFixture(t)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.UpdateAlertStatus("owner-1", res.AlertID, domain.AlertStatus("escalated")), ErrInvalidAlertStatus)
	assert.ErrorIs(t, f.uc.UpdateAlertStatus("owner-2", res.AlertID, domain.AlertResolved), ErrAlertNotFound)
	assert.ErrorIs(t, f.uc.UpdateAlertStatus("owner-1", "no-such-alert", domain.AlertResolved), ErrAlertNotFound)

	require.NoError(t, f.uc.UpdateAlertStatus("owner-1", res.AlertID, domain.AlertResolved))

	alert, err := repository.NewAlertRepository(f.db).FindByID(res.AlertID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertResolved, alert.Status)
}

func TestRespondToAlert(t *testing.T) {
	f := newAlertFixture(t)

	c1 := f.addContact(t, "owner-1", "Alpha", 1, true)
	outsider := f.addContact(t, "owner-2", "Out", 1, true)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)

	err = f.uc.RespondToAlert(context.Background(), "no-such-contact", res.AlertID, "hi")
	assert.ErrorIs(t, err, ErrContactNotFound)

	// A contact of a different user cannot reach this alert.
	err = f.uc.RespondToAlert(context.Background(), outsider.ID, res.AlertID, "hi")
	assert.ErrorIs(t, err, ErrAlertNotFound)

	require.NoError(t, f.uc.RespondToAlert(context.Background(), c1.ID, res.AlertID, "calling you now"))

	notifications, err := f.uc.GetNotifications("owner-1", res.AlertID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationResponded, notifications[0].Status)
	assert.Equal(t, "calling you now", notifications[0].Response)
	assert.NotNil(t, notifications[0].RespondedAt)
}

func TestRespondToAlertTwiceStaysResponded(t *testing.T) {
	f := newAlertFixture(t)

	c1 := f.addContact(t, "owner-1", "Alpha", 1, true)
	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.RespondToAlert(context.Background(), c1.ID, res.AlertID, "on my way"))

	first, err := f.uc.GetNotifications("owner-1", res.AlertID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, first[0].RespondedAt)

	// A second response succeeds, overwriting text and timestamp; the
	// state stays terminal and no extra rows appear.
	require.NoError(t, f.uc.RespondToAlert(context.Background(), c1.ID, res.AlertID, "arrived, she is safe"))

	second, err := f.uc.GetNotifications("owner-1", res.AlertID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, domain.NotificationResponded, second[0].Status)
	assert.Equal(t, "arrived, she is safe", second[0].Response)
	require.NotNil(t, second[0].RespondedAt)
	assert.False(t, second[0].RespondedAt.Before(*first[0].RespondedAt))
}

func TestRespondToAlertOutsideSnapshot(t *testing.T) {
	f := newAlertFixture(t)

	f.addContact(t, "owner-1", "Alpha", 1, true)

	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)

	// Verified after the alert was created: same owner, but not part of
	// the fan-out snapshot.
	late := f.addContact(t, "owner-1", "Late", 2, true)

	err = f.uc.RespondToAlert(context.Background(), late.ID, res.AlertID, "hi")
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	notifications, err := f.uc.GetNotifications("owner-1", res.AlertID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationPending, notifications[0].Status, "failed respond must not mutate the snapshot")
}

func TestAlertPushesToOwnerDevices(t *testing.T) {
	f := newAlertFixture(t)

	deviceRepo := authrepo.NewDeviceTokenRepository(f.db)
	require.NoError(t, deviceRepo.SaveToken("owner-1", "device-a", "phone"))

	c1 := f.addContact(t, "owner-1", "Alpha", 1, true)
	res, err := f.uc.CreateAlert(context.Background(), "owner-1", &CreateAlertRequest{
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.RespondToAlert(context.Background(), c1.ID, res.AlertID, "coming"))

	require.Len(t, f.push.sent, 2)
	assert.Equal(t, "SOS alert sent", f.push.sent[0].Title)
	assert.Equal(t, "Emergency contact responded", f.push.sent[1].Title)
	assert.Equal(t, []string{"device-a"}, f.push.calls[0])
}
