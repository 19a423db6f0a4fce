package utils

// APIResponse adalah format standar JSON yang diterima Frontend.
// Contoh sukses : { "status": "success", "message": "Login berhasil", "data": { ... } }
// Contoh gagal  : { "status": "error", "message": "Data tidak lengkap", "code": "validation_error" }
// Field status memakai string "success"/"error" mengikuti kontrak API lama;
// code adalah kode error machine-readable yang dulu tidak ada.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// BuildResponseSuccess digunakan saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed digunakan saat terjadi error (HTTP 400, 401, 404, 409, 500).
// - message: pesan untuk user (misal: "Data tidak lengkap").
// - code   : kode error machine-readable (lihat utils/errors.go).
func BuildResponseFailed(message string, code string) APIResponse {
	return APIResponse{
		Status:  "error",
		Message: message,
		Code:    code,
	}
}
