// file: internals/helpers/oss/oss_client_test.go
package oss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "foto-gerbang-1", slugify("Foto Gerbang 1"))
	assert.Equal(t, "img-2024", slugify("IMG_2024"))
	assert.Equal(t, "file", slugify("   "))
	assert.Equal(t, "file", slugify("日本語"))
}

func TestJoinParts(t *testing.T) {
	assert.Equal(t, "centers/mh001", joinParts("centers", "MH001"))
	assert.Equal(t, "centers", joinParts("centers", "", "  "))
	assert.Equal(t, "unknown", joinParts("///"))
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "centers"}
	key := s.buildObjectKey("MH001", "Foto Gerbang.JPG")

	assert.True(t, strings.HasPrefix(key, "centers/mh001/foto-gerbang_"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	// nama tanpa basename tetap menghasilkan key valid
	key = s.buildObjectKey("MH001", ".png")
	assert.Contains(t, key, "/file_")
}

func TestPublicURLAndExtractKey(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")

	s := &OSSService{
		Endpoint:   "https://oss-ap-southeast-5.aliyuncs.com",
		BucketName: "centerku",
	}
	key := "centers/mh001/foto_20250310_120000_ab12cd.webp"
	url := s.PublicURL(key)
	assert.Equal(t, "https://centerku.oss-ap-southeast-5.aliyuncs.com/"+key, url)

	got, err := ExtractKeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestExtractKeyFromPublicURL_CustomBase(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.centerku.id")

	got, err := ExtractKeyFromPublicURL("https://cdn.centerku.id/centers/mh001/x.webp")
	require.NoError(t, err)
	assert.Equal(t, "centers/mh001/x.webp", got)
}

func TestExtractKeyFromPublicURL_Invalid(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")

	_, err := ExtractKeyFromPublicURL("")
	assert.Error(t, err)
	_, err = ExtractKeyFromPublicURL("https://host-tanpa-path")
	assert.Error(t, err)
}
