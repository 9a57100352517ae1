// file: internals/features/imports/service/csv_parse.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RowError: kegagalan satu baris CSV, lainnya tetap diproses.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type UserCSVRow struct {
	Line     int
	Username string
	Email    string
	Password string
}

type CenterCSVRow struct {
	Line      int
	Code      string
	Name      string
	State     string
	City      string
	Latitude  *float64
	Longitude *float64
	Address   *string
	DeskCount *string
	Remark    *string
}

// ParseUsersCSV membaca CSV user. Header wajib: username,email,password
// (urutan bebas, case-insensitive). Baris invalid dikumpulkan sebagai
// RowError tanpa menghentikan parsing.
func ParseUsersCSV(r io.Reader) ([]UserCSVRow, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("header CSV tidak terbaca: %w", err)
	}
	idx := headerIndex(header)
	for _, col := range []string{"username", "email", "password"} {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("kolom %q tidak ditemukan di header", col)
		}
	}

	var rows []UserCSVRow
	var rowErrs []RowError
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Message: err.Error()})
			continue
		}

		row := UserCSVRow{
			Line:     line,
			Username: strings.TrimSpace(field(rec, idx["username"])),
			Email:    strings.ToLower(strings.TrimSpace(field(rec, idx["email"]))),
			Password: field(rec, idx["password"]),
		}
		switch {
		case row.Username == "":
			rowErrs = append(rowErrs, RowError{Line: line, Message: "username kosong"})
		case row.Email == "" || !strings.Contains(row.Email, "@"):
			rowErrs = append(rowErrs, RowError{Line: line, Message: "email tidak valid"})
		case len(row.Password) < 8:
			rowErrs = append(rowErrs, RowError{Line: line, Message: "password minimal 8 karakter"})
		default:
			rows = append(rows, row)
		}
	}
	return rows, rowErrs, nil
}

// ParseCentersCSV membaca CSV center. Header wajib:
// center_code,center_name,state,city; opsional:
// latitude,longitude,address,biometric_desk_count,remark.
func ParseCentersCSV(r io.Reader) ([]CenterCSVRow, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("header CSV tidak terbaca: %w", err)
	}
	idx := headerIndex(header)
	for _, col := range []string{"center_code", "center_name", "state", "city"} {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("kolom %q tidak ditemukan di header", col)
		}
	}

	var rows []CenterCSVRow
	var rowErrs []RowError
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Message: err.Error()})
			continue
		}

		row := CenterCSVRow{
			Line:      line,
			Code:      strings.TrimSpace(field(rec, idx["center_code"])),
			Name:      strings.TrimSpace(field(rec, idx["center_name"])),
			State:     strings.TrimSpace(field(rec, idx["state"])),
			City:      strings.TrimSpace(field(rec, idx["city"])),
			Address:   optField(rec, idx, "address"),
			DeskCount: optField(rec, idx, "biometric_desk_count"),
			Remark:    optField(rec, idx, "remark"),
		}
		if row.Code == "" || row.Name == "" || row.State == "" || row.City == "" {
			rowErrs = append(rowErrs, RowError{Line: line, Message: "center_code, center_name, state, dan city wajib diisi"})
			continue
		}

		lat, latErr := optFloat(rec, idx, "latitude")
		lng, lngErr := optFloat(rec, idx, "longitude")
		if latErr != nil || lngErr != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Message: "latitude/longitude bukan angka"})
			continue
		}
		row.Latitude, row.Longitude = lat, lng

		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

/* ==============================
   util
============================== */

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func optField(rec []string, idx map[string]int, col string) *string {
	i, ok := idx[col]
	if !ok {
		return nil
	}
	v := strings.TrimSpace(field(rec, i))
	if v == "" {
		return nil
	}
	return &v
}

func optFloat(rec []string, idx map[string]int, col string) (*float64, error) {
	s := optField(rec, idx, col)
	if s == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
