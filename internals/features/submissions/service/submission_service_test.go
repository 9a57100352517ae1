// file: internals/features/submissions/service/submission_service_test.go
package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centerku_backend/internals/features/submissions/model"
	"centerku_backend/internals/helpers/dbtime"
)

/* ==============================
   Fake store (in-memory) dengan unique index (submitter, day)
============================== */

type fakeCenter struct {
	Code, Name, State, City, SubmittedBy string
}

type fakeStore struct {
	mu        sync.Mutex
	subs      map[uuid.UUID]model.UserSubmissionModel
	centers   map[string]fakeCenter
	upsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		subs:    make(map[uuid.UUID]model.UserSubmissionModel),
		centers: make(map[string]fakeCenter),
	}
}

func (f *fakeStore) FindBySubmitterInRange(_ context.Context, email string, from, to time.Time) (*model.UserSubmissionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.subs {
		at := s.UserSubmissionSubmittedAt
		if s.UserSubmissionSubmittedBy == email && !at.Before(from) && at.Before(to) {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(_ context.Context, sub *model.UserSubmissionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.subs {
		if s.UserSubmissionSubmittedBy == sub.UserSubmissionSubmittedBy &&
			s.UserSubmissionDay.Equal(sub.UserSubmissionDay) {
			return ErrDuplicateDay
		}
	}
	if sub.UserSubmissionID == uuid.Nil {
		sub.UserSubmissionID = uuid.New()
	}
	f.subs[sub.UserSubmissionID] = *sub
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*model.UserSubmissionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.subs[id]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (f *fakeStore) Save(_ context.Context, sub *model.UserSubmissionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[sub.UserSubmissionID] = *sub
	return nil
}

func (f *fakeStore) Delete(_ context.Context, sub *model.UserSubmissionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs, sub.UserSubmissionID)
	return nil
}

func (f *fakeStore) ListBySubmitter(_ context.Context, email string) ([]model.UserSubmissionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.UserSubmissionModel
	for _, s := range f.subs {
		if s.UserSubmissionSubmittedBy == email {
			out = append(out, s)
		}
	}
	sortDesc(out)
	return out, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]model.UserSubmissionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.UserSubmissionModel, 0, len(f.subs))
	for _, s := range f.subs {
		out = append(out, s)
	}
	sortDesc(out)
	return out, nil
}

func (f *fakeStore) UpsertCenterLite(_ context.Context, code, name, state, city, submittedBy string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.centers[code] = fakeCenter{Code: code, Name: name, State: state, City: city, SubmittedBy: submittedBy}
	return nil
}

func sortDesc(rows []model.UserSubmissionModel) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].UserSubmissionSubmittedAt.After(rows[j].UserSubmissionSubmittedAt)
	})
}

var _ Store = (*fakeStore)(nil)

/* ==============================
   Helpers
============================== */

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func baseData() CenterData {
	return CenterData{
		CenterCode: "MH001",
		CenterName: "Center Mahim",
		State:      "Maharashtra",
		City:       "Mumbai",
	}
}

func ptr[T any](v T) *T { return &v }

func middayAt(daysFromNow int) time.Time {
	loc := dbtime.AppLocation()
	n := time.Now().In(loc).AddDate(0, 0, daysFromNow)
	return time.Date(n.Year(), n.Month(), n.Day(), 12, 0, 0, 0, loc)
}

/* ==============================
   Create
============================== */

func TestCreateSubmission_Basic(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	sub, err := svc.CreateSubmission(context.Background(), "User@Example.com", baseData())
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", sub.UserSubmissionSubmittedBy, "email harus lowercase")
	assert.Equal(t, "MH001", sub.UserSubmissionCenterCode)
	assert.NotEqual(t, uuid.Nil, sub.UserSubmissionID)

	// side effect direktori center
	c, ok := store.centers["MH001"]
	require.True(t, ok)
	assert.Equal(t, "Maharashtra", c.State)
	assert.Equal(t, "user@example.com", c.SubmittedBy)
}

func TestCreateSubmission_Validation(t *testing.T) {
	svc := NewSubmissionServiceWithClock(newFakeStore(), fixedClock(middayAt(0)))

	_, err := svc.CreateSubmission(context.Background(), "", baseData())
	assert.ErrorIs(t, err, ErrValidation)

	data := baseData()
	data.CenterCode = "   "
	_, err = svc.CreateSubmission(context.Background(), "a@b.com", data)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateSubmission_SecondSameDayRejected(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	data := baseData()
	data.CenterCode = "MH002" // center berbeda pun tetap ditolak
	_, err = svc.CreateSubmission(context.Background(), "a@b.com", data)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestCreateSubmission_DifferentUsersSameDay(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)
	_, err = svc.CreateSubmission(context.Background(), "c@d.com", baseData())
	assert.NoError(t, err)
}

func TestCreateSubmission_NextDayAllowed(t *testing.T) {
	store := newFakeStore()

	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))
	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	svcTomorrow := NewSubmissionServiceWithClock(store, fixedClock(middayAt(1)))
	_, err = svcTomorrow.CreateSubmission(context.Background(), "a@b.com", baseData())
	assert.NoError(t, err)
}

// Race check-then-insert: dua request lolos pre-check bersamaan, unique
// index di store jadi penjaga terakhir dan error-nya dipetakan jadi
// ErrDuplicateSubmission, bukan error mentah.
func TestCreateSubmission_RaceBackstop(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	// tanam submission langsung ke store setelah pre-check pasti lolos:
	// simulasinya cukup dengan insert duluan bertanda day yang sama
	day := dbtime.DayOf(middayAt(0))
	pre := &model.UserSubmissionModel{
		UserSubmissionSubmittedBy: "a@b.com",
		UserSubmissionCenterCode:  "MH001",
		UserSubmissionDay:         day,
		// submitted_at di luar jendela supaya pre-check service tidak melihatnya
		UserSubmissionSubmittedAt: middayAt(0).Add(-48 * time.Hour),
	}
	require.NoError(t, store.Insert(context.Background(), pre))

	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestCreateSubmission_LocationFallbackFromMedia(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	data := baseData()
	data.Media = model.MediaMap{
		"passage": {{URL: "https://cdn/x.webp", Latitude: ptr(19.04), Longitude: ptr(72.84), Address: "Mahim West"}},
	}

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", data)
	require.NoError(t, err)
	require.NotNil(t, sub.UserSubmissionLatitude)
	assert.InDelta(t, 19.04, *sub.UserSubmissionLatitude, 1e-9)
	require.NotNil(t, sub.UserSubmissionAddress)
	assert.Equal(t, "Mahim West", *sub.UserSubmissionAddress)
}

func TestCreateSubmission_ExplicitLocationWins(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	data := baseData()
	data.Latitude = ptr(1.0)
	data.Longitude = ptr(2.0)
	data.Media = model.MediaMap{
		"entry": {{URL: "u", Latitude: ptr(9.0), Longitude: ptr(9.0)}},
	}

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", data)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, *sub.UserSubmissionLatitude, 1e-9)
	assert.InDelta(t, 2.0, *sub.UserSubmissionLongitude, 1e-9)
}

func TestCreateSubmission_UpsertErrorPropagatesAfterPersist(t *testing.T) {
	store := newFakeStore()
	store.upsertErr = assert.AnError
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.Error(t, err)

	// submission sudah tersimpan meski upsert center gagal
	rows, _ := store.ListBySubmitter(context.Background(), "a@b.com")
	assert.Len(t, rows, 1)
}

/* ==============================
   Update
============================== */

func TestUpdateSubmission_OwnerOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	// user lain → tidak bisa dibedakan dari "tidak ada"
	_, err = svc.UpdateSubmission(context.Background(), sub.UserSubmissionID, "mallory@evil.com", baseData())
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)

	// id acak → error yang sama persis
	_, err2 := svc.UpdateSubmission(context.Background(), uuid.New(), "a@b.com", baseData())
	assert.ErrorIs(t, err2, ErrNotFoundOrForbidden)
	assert.Equal(t, err.Error(), err2.Error())
}

// Partial update: hanya center_name dikirim — field lain dan seluruh
// media harus tetap memakai nilai lama.
func TestUpdateSubmission_NameOnlyKeepsEverythingElse(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	data := baseData()
	data.Latitude = ptr(19.04)
	data.Longitude = ptr(72.84)
	data.Media = model.MediaMap{
		"entry":   {{URL: "entry-1"}},
		"passage": {{URL: "passage-1"}},
	}
	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", data)
	require.NoError(t, err)

	got, err := svc.UpdateSubmission(context.Background(), sub.UserSubmissionID, "a@b.com",
		CenterData{CenterName: "X"})
	require.NoError(t, err)

	assert.Equal(t, "X", got.UserSubmissionCenterName)
	assert.Equal(t, "MH001", got.UserSubmissionCenterCode)
	assert.Equal(t, "Maharashtra", got.UserSubmissionState)
	assert.Equal(t, "Mumbai", got.UserSubmissionCity)
	require.NotNil(t, got.UserSubmissionLatitude)
	assert.InDelta(t, 19.04, *got.UserSubmissionLatitude, 1e-9)

	media := got.Media()
	require.Len(t, media["entry"], 1)
	assert.Equal(t, "entry-1", media["entry"][0].URL)
	require.Len(t, media["passage"], 1)
	assert.Equal(t, "passage-1", media["passage"][0].URL)
}

func TestUpdateSubmission_ProvidedScalarsOverwrite(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	got, err := svc.UpdateSubmission(context.Background(), sub.UserSubmissionID, "a@b.com",
		CenterData{City: "Thane", DeskCount: ptr("6")})
	require.NoError(t, err)

	assert.Equal(t, "Thane", got.UserSubmissionCity)
	require.NotNil(t, got.UserSubmissionDeskCount)
	assert.Equal(t, "6", *got.UserSubmissionDeskCount)
	assert.Equal(t, "Center Mahim", got.UserSubmissionCenterName)
}

func TestUpdateSubmission_MediaCarryForward(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	data := baseData()
	data.Media = model.MediaMap{
		"entry":   {{URL: "entry-1"}},
		"passage": {{URL: "passage-1"}},
	}
	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", data)
	require.NoError(t, err)

	// update hanya menyentuh remark — media tidak dikirim sama sekali
	upd := baseData()
	upd.Remark = ptr("lampu mati")
	got, err := svc.UpdateSubmission(context.Background(), sub.UserSubmissionID, "a@b.com", upd)
	require.NoError(t, err)

	media := got.Media()
	assert.Len(t, media["entry"], 1)
	assert.Len(t, media["passage"], 1)
	assert.Equal(t, "lampu mati", *got.UserSubmissionRemark)
}

func TestUpdateSubmission_CategoryReplaceNotMerge(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	data := baseData()
	data.Media = model.MediaMap{
		"entry":   {{URL: "old-1"}, {URL: "old-2"}},
		"passage": {{URL: "keep-me"}},
	}
	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", data)
	require.NoError(t, err)

	upd := baseData()
	upd.Media = model.MediaMap{
		"entry": {{URL: "new-1"}}, // ganti utuh, bukan append
	}
	got, err := svc.UpdateSubmission(context.Background(), sub.UserSubmissionID, "a@b.com", upd)
	require.NoError(t, err)

	media := got.Media()
	require.Len(t, media["entry"], 1)
	assert.Equal(t, "new-1", media["entry"][0].URL)
	require.Len(t, media["passage"], 1)
	assert.Equal(t, "keep-me", media["passage"][0].URL)
}

func TestUpdateSubmission_EmptyListClearsCategory(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	data := baseData()
	data.Media = model.MediaMap{"entry": {{URL: "old"}}}
	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", data)
	require.NoError(t, err)

	upd := baseData()
	upd.Media = model.MediaMap{"entry": {}} // list kosong ≠ null
	got, err := svc.UpdateSubmission(context.Background(), sub.UserSubmissionID, "a@b.com", upd)
	require.NoError(t, err)

	assert.Empty(t, got.Media()["entry"])
}

/* ==============================
   Today / ByDate
============================== */

func TestCheckTodaySubmission(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	st, err := svc.CheckTodaySubmission(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.False(t, st.HasSubmitted)
	assert.Nil(t, st.SubmissionID)

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	st, err = svc.CheckTodaySubmission(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.True(t, st.HasSubmitted)
	require.NotNil(t, st.SubmissionID)
	assert.Equal(t, sub.UserSubmissionID, *st.SubmissionID)
}

func TestGetSubmissionByDate(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	got, err := svc.GetSubmissionByDate(context.Background(), "a@b.com", middayAt(0))
	require.NoError(t, err)
	assert.Equal(t, sub.UserSubmissionID, got.UserSubmissionID)

	// hari berikutnya → tidak ada
	_, err = svc.GetSubmissionByDate(context.Background(), "a@b.com", middayAt(1))
	assert.ErrorIs(t, err, ErrNotFound)

	// user lain pada tanggal yang sama → tidak ada
	_, err = svc.GetSubmissionByDate(context.Background(), "c@d.com", middayAt(0))
	assert.ErrorIs(t, err, ErrNotFound)
}

/* ==============================
   Delete / Listing
============================== */

func TestDeleteSubmission(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	sub, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteSubmission(context.Background(), sub.UserSubmissionID, "c@d.com"), ErrNotFoundOrForbidden)

	require.NoError(t, svc.DeleteSubmission(context.Background(), sub.UserSubmissionID, "a@b.com"))
	assert.ErrorIs(t, svc.DeleteSubmission(context.Background(), sub.UserSubmissionID, "a@b.com"), ErrNotFoundOrForbidden)

	// setelah dihapus, hari yang sama bisa submit lagi
	_, err = svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	assert.NoError(t, err)
}

func TestListPublicSubmissions_StripsSubmitter(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)
	_, err = svc.CreateSubmission(context.Background(), "c@d.com", baseData())
	require.NoError(t, err)

	rows, err := svc.ListPublicSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Empty(t, r.UserSubmissionSubmittedBy)
	}

	// listing admin tetap membawa identitas
	all, err := svc.ListAllSubmissions(context.Background())
	require.NoError(t, err)
	for _, r := range all {
		assert.NotEmpty(t, r.UserSubmissionSubmittedBy)
	}
}

func TestListMySubmissions_OnlyOwn(t *testing.T) {
	store := newFakeStore()
	svc := NewSubmissionServiceWithClock(store, fixedClock(middayAt(0)))

	_, err := svc.CreateSubmission(context.Background(), "a@b.com", baseData())
	require.NoError(t, err)
	_, err = svc.CreateSubmission(context.Background(), "c@d.com", baseData())
	require.NoError(t, err)

	rows, err := svc.ListMySubmissions(context.Background(), "A@b.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a@b.com", rows[0].UserSubmissionSubmittedBy)
}
