// file: internals/features/submissions/service/media_merge.go
package service

import (
	"centerku_backend/internals/constants"
	"centerku_backend/internals/features/submissions/model"
)

// MergeMedia menggabungkan media lama dengan payload update per kategori:
//   - kategori yang dikirim sebagai list → DIGANTI UTUH dengan list baru
//     (client sudah menyertakan item lama yang mau dipertahankan)
//   - kategori yang tidak dikirim (atau dikirim null) → tidak disentuh
//   - update kosong → semua media lama dibawa serta (partial update field
//     teks tidak boleh diam-diam menghapus media)
//
// Fungsi murni: tidak memodifikasi argumen.
func MergeMedia(orig, update model.MediaMap) model.MediaMap {
	out := make(model.MediaMap, len(orig)+len(update))
	for cat, items := range orig {
		out[cat] = items
	}
	for cat, items := range update {
		if items == nil {
			// null bukan list — kategori dibiarkan apa adanya
			continue
		}
		out[cat] = items
	}
	return out
}

// FirstMediaLocation memindai kategori media dengan urutan prioritas TETAP
// (constants.MediaCategories) dan mengembalikan item pertama yang membawa
// koordinat. Tidak bergantung pada urutan iterasi map.
func FirstMediaLocation(media model.MediaMap) *model.MediaItem {
	for _, cat := range constants.MediaCategories {
		for i := range media[cat] {
			it := media[cat][i]
			if it.Latitude != nil && it.Longitude != nil {
				return &it
			}
		}
	}
	return nil
}
