// file: internals/features/imports/service/csv_parse_test.go
package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUsersCSV(t *testing.T) {
	in := strings.Join([]string{
		"username,email,password",
		"budi,Budi@Example.com,passwordku1",
		",kosong@x.com,passwordku1",
		"siti,bukan-email,passwordku1",
		"andi,andi@x.com,pendek",
		"rina,rina@x.com,passwordrina",
	}, "\n")

	rows, rowErrs, err := ParseUsersCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "budi", rows[0].Username)
	assert.Equal(t, "budi@example.com", rows[0].Email, "email dinormalkan lowercase")
	assert.Equal(t, "rina", rows[1].Username)

	require.Len(t, rowErrs, 3)
	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Equal(t, 4, rowErrs[1].Line)
	assert.Equal(t, 5, rowErrs[2].Line)
}

func TestParseUsersCSV_HeaderOrderFree(t *testing.T) {
	in := "PASSWORD,Username,Email\npasswordku1,budi,budi@x.com\n"

	rows, rowErrs, err := ParseUsersCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, "budi", rows[0].Username)
}

func TestParseUsersCSV_MissingColumn(t *testing.T) {
	_, _, err := ParseUsersCSV(strings.NewReader("username,email\nbudi,b@x.com\n"))
	assert.Error(t, err)
}

func TestParseCentersCSV(t *testing.T) {
	in := strings.Join([]string{
		"center_code,center_name,state,city,latitude,longitude,biometric_desk_count",
		"MH001,Center Mahim,Maharashtra,Mumbai,19.04,72.84,4",
		"MH002,Center Dadar,Maharashtra,Mumbai,,,",
		",Tanpa Kode,Maharashtra,Mumbai,,,",
		"MH003,Center Thane,Maharashtra,Thane,abc,72.9,2",
	}, "\n")

	rows, rowErrs, err := ParseCentersCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "MH001", rows[0].Code)
	require.NotNil(t, rows[0].Latitude)
	assert.InDelta(t, 19.04, *rows[0].Latitude, 1e-9)
	require.NotNil(t, rows[0].DeskCount)
	assert.Equal(t, "4", *rows[0].DeskCount)

	assert.Equal(t, "MH002", rows[1].Code)
	assert.Nil(t, rows[1].Latitude)
	assert.Nil(t, rows[1].DeskCount)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 4, rowErrs[0].Line)
	assert.Equal(t, 5, rowErrs[1].Line)
}

func TestParseCentersCSV_MissingHeader(t *testing.T) {
	_, _, err := ParseCentersCSV(strings.NewReader("center_code,center_name\nMH001,X\n"))
	assert.Error(t, err)
}
