// file: internals/features/submissions/service/media_merge_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centerku_backend/internals/features/submissions/model"
)

func TestMergeMedia_ReplaceWholeCategory(t *testing.T) {
	orig := model.MediaMap{
		"entry":   {{URL: "a"}, {URL: "b"}},
		"passage": {{URL: "c"}},
	}
	update := model.MediaMap{
		"entry": {{URL: "x"}},
	}

	out := MergeMedia(orig, update)

	require.Len(t, out["entry"], 1)
	assert.Equal(t, "x", out["entry"][0].URL)
	// kategori yang tidak dikirim dibawa serta apa adanya
	require.Len(t, out["passage"], 1)
	assert.Equal(t, "c", out["passage"][0].URL)
}

func TestMergeMedia_EmptyUpdateKeepsEverything(t *testing.T) {
	orig := model.MediaMap{
		"entry": {{URL: "a"}},
	}

	assert.Len(t, MergeMedia(orig, nil)["entry"], 1)
	assert.Len(t, MergeMedia(orig, model.MediaMap{})["entry"], 1)
}

func TestMergeMedia_NullCategoryUntouched(t *testing.T) {
	orig := model.MediaMap{"entry": {{URL: "a"}}}
	update := model.MediaMap{"entry": nil} // JSON null, bukan []

	out := MergeMedia(orig, update)
	require.Len(t, out["entry"], 1)
	assert.Equal(t, "a", out["entry"][0].URL)
}

func TestMergeMedia_EmptyListClears(t *testing.T) {
	orig := model.MediaMap{"entry": {{URL: "a"}}}
	update := model.MediaMap{"entry": {}}

	assert.Empty(t, MergeMedia(orig, update)["entry"])
}

func TestMergeMedia_NewCategoryAdded(t *testing.T) {
	orig := model.MediaMap{"entry": {{URL: "a"}}}
	update := model.MediaMap{"biometricDeskSetup": {{URL: "d"}}}

	out := MergeMedia(orig, update)
	assert.Len(t, out["entry"], 1)
	assert.Len(t, out["biometricDeskSetup"], 1)
}

func TestMergeMedia_DoesNotMutateArguments(t *testing.T) {
	orig := model.MediaMap{"entry": {{URL: "a"}}}
	update := model.MediaMap{"entry": {{URL: "x"}}}

	_ = MergeMedia(orig, update)

	assert.Equal(t, "a", orig["entry"][0].URL)
}

func TestFirstMediaLocation_PriorityOrder(t *testing.T) {
	lat, lng := 1.0, 2.0
	media := model.MediaMap{
		// "passage" lebih prioritas daripada "biometricDeskCount"
		"biometricDeskCount": {{URL: "later", Latitude: &lat, Longitude: &lng}},
		"passage":            {{URL: "first", Latitude: &lat, Longitude: &lng}},
	}

	it := FirstMediaLocation(media)
	require.NotNil(t, it)
	assert.Equal(t, "first", it.URL)
}

func TestFirstMediaLocation_SkipsItemsWithoutBothCoords(t *testing.T) {
	lat, lng := 1.0, 2.0
	media := model.MediaMap{
		"entry": {
			{URL: "lat-only", Latitude: &lat},
			{URL: "lng-only", Longitude: &lng},
			{URL: "complete", Latitude: &lat, Longitude: &lng},
		},
	}

	it := FirstMediaLocation(media)
	require.NotNil(t, it)
	assert.Equal(t, "complete", it.URL)
}

func TestFirstMediaLocation_NoLocation(t *testing.T) {
	assert.Nil(t, FirstMediaLocation(nil))
	assert.Nil(t, FirstMediaLocation(model.MediaMap{"entry": {{URL: "a"}}}))
}
