// file: internals/databases/migrate.go
package database

import (
	"log"

	adminmodel "centerku_backend/internals/features/admins/model"
	centermodel "centerku_backend/internals/features/centers/model"
	submissionmodel "centerku_backend/internals/features/submissions/model"
	usermodel "centerku_backend/internals/features/users/model"
)

// MigrateAll menjalankan AutoMigrate semua tabel aplikasi.
// Unique index komposit (submitter, day) ikut terbentuk di sini —
// itu yang menjamin satu submission per user per hari di level DB.
func MigrateAll() {
	if err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&adminmodel.AdminModel{},
		&centermodel.CenterModel{},
		&submissionmodel.UserSubmissionModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
