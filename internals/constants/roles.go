package constants

// Role global pada token & kolom users.role / guard admin
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Kategori media submission, urutan = prioritas fallback lokasi
var MediaCategories = []string{
	"entry",
	"passage",
	"biometricDeskSetup",
	"biometricDeskCount",
	"entryToPassage",
}

func IsKnownMediaCategory(cat string) bool {
	for _, c := range MediaCategories {
		if c == cat {
			return true
		}
	}
	return false
}
