// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"log"
	"strings"
	"sync"
	"time"
)

var (
	appLoc     *time.Location
	appLocOnce sync.Once
	appLocName = "Asia/Jakarta"
)

// SetAppTimezone dipanggil sekali dari main sebelum server jalan.
// Batas hari submission dihitung di timezone ini — konsisten untuk
// seluruh deployment, tidak boleh berubah per request.
func SetAppTimezone(name string) {
	if strings.TrimSpace(name) != "" {
		appLocName = strings.TrimSpace(name)
	}
}

// AppLocation mengembalikan *time.Location acuan (lazy, sekali load).
func AppLocation() *time.Location {
	appLocOnce.Do(func() {
		loc, err := time.LoadLocation(appLocName)
		if err != nil {
			log.Printf("⚠️ timezone %q tidak dikenal, fallback UTC: %v", appLocName, err)
			loc = time.UTC
		}
		appLoc = loc
	})
	return appLoc
}

// DayBounds mengembalikan [awal hari, awal hari berikutnya) untuk t
// pada timezone acuan.
func DayBounds(t time.Time) (time.Time, time.Time) {
	loc := AppLocation()
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// DayOf mengembalikan tanggal kalender (YYYY-MM-DD, jam 00:00 di timezone
// acuan) untuk t. Dipakai untuk kolom bucket harian user_submissions.
func DayOf(t time.Time) time.Time {
	start, _ := DayBounds(t)
	return start
}

// ParseYMD mem-parse "2006-01-02" di timezone acuan.
func ParseYMD(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), AppLocation())
}
